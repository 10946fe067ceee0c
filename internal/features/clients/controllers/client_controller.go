package clients_controllers

import (
	"errors"
	"net/http"
	"strings"

	"clientbase-backend/internal/features/workspaces"

	clients_dto "clientbase-backend/internal/features/clients/dto"
	clients_services "clientbase-backend/internal/features/clients/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientController struct {
	clientService *clients_services.ClientService
}

// RegisterRoutes mounts the handlers twice: once for the personal workspace
// and once under a team workspace slug.
func (c *ClientController) RegisterRoutes(router gin.IRoutes) {
	for _, prefix := range []string{"", "/workspaces/:slug"} {
		router.GET(prefix+"/clients", c.GetClients)
		router.GET(prefix+"/clients/stats", c.GetClientStats)
		router.GET(prefix+"/clients/:clientId", c.GetClient)
		router.POST(prefix+"/clients", c.CreateClient)
		router.PUT(prefix+"/clients/:clientId", c.UpdateClient)
		router.DELETE(prefix+"/clients/:clientId", c.DeleteClient)
	}
}

// GetClients
// @Summary List clients
// @Description List workspace clients with optional status filter and search
// @Tags clients
// @Produce json
// @Param status query string false "Status filter"
// @Param search query string false "Search over name, email and company"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} clients_dto.GetClientsResponseDTO
// @Failure 401
// @Router /clients [get]
func (c *ClientController) GetClients(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var request clients_dto.GetClientsRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	response, err := c.clientService.GetClients(workspace, &request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetClientStats
// @Summary Get client statistics
// @Description Get status and source breakdowns plus recent clients
// @Tags clients
// @Produce json
// @Success 200 {object} clients_dto.ClientStatsDTO
// @Failure 401
// @Router /clients/stats [get]
func (c *ClientController) GetClientStats(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx.JSON(http.StatusOK, c.clientService.GetClientStats(workspace))
}

// GetClient
// @Summary Get a client
// @Description Get a single client belonging to the workspace
// @Tags clients
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} clients_models.Client
// @Failure 303
// @Failure 401
// @Router /clients/{clientId} [get]
func (c *ClientController) GetClient(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	clientID, err := uuid.Parse(ctx.Param("clientId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid client ID"})
		return
	}

	client, err := c.clientService.GetClient(workspace, clientID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, client)
}

// CreateClient
// @Summary Create a client
// @Description Create a client in the workspace
// @Tags clients
// @Accept json
// @Produce json
// @Param request body clients_dto.CreateClientRequestDTO true "Client data"
// @Success 201 {object} clients_models.Client
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /clients [post]
func (c *ClientController) CreateClient(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var request clients_dto.CreateClientRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	client, err := c.clientService.CreateClient(ctx.Request.Context(), workspace, &request)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, client)
}

// UpdateClient
// @Summary Update a client
// @Description Update fields of an existing client
// @Tags clients
// @Accept json
// @Produce json
// @Param clientId path string true "Client ID"
// @Param request body clients_dto.UpdateClientRequestDTO true "Fields to update"
// @Success 200 {object} clients_models.Client
// @Failure 303
// @Failure 401
// @Failure 403
// @Router /clients/{clientId} [put]
func (c *ClientController) UpdateClient(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	clientID, err := uuid.Parse(ctx.Param("clientId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid client ID"})
		return
	}

	var request clients_dto.UpdateClientRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	client, err := c.clientService.UpdateClient(ctx.Request.Context(), workspace, clientID, &request)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, client)
}

// DeleteClient
// @Summary Delete a client
// @Description Delete a client from the workspace
// @Tags clients
// @Param clientId path string true "Client ID"
// @Success 204
// @Failure 303
// @Failure 401
// @Failure 403
// @Router /clients/{clientId} [delete]
func (c *ClientController) DeleteClient(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	clientID, err := uuid.Parse(ctx.Param("clientId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid client ID"})
		return
	}

	if err := c.clientService.DeleteClient(ctx.Request.Context(), workspace, clientID); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// respondError maps service errors onto responses. A tenant miss navigates
// back to the list so the client never learns whether the id exists.
func (c *ClientController) respondError(ctx *gin.Context, err error) {
	if errors.Is(err, clients_services.ErrClientNotInWorkspace) {
		ctx.Redirect(http.StatusSeeOther, c.listPath(ctx))
		return
	}

	if strings.Contains(err.Error(), "permission") {
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	if strings.Contains(err.Error(), "invalid") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (c *ClientController) listPath(ctx *gin.Context) string {
	if slug := ctx.Param("slug"); slug != "" {
		return "/workspaces/" + slug + "/clients"
	}

	return "/clients"
}
