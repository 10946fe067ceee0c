package interactions_controllers

import (
	"errors"
	"net/http"
	"strings"

	"clientbase-backend/internal/features/workspaces"

	interactions_dto "clientbase-backend/internal/features/interactions/dto"
	interactions_services "clientbase-backend/internal/features/interactions/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InteractionController struct {
	interactionService *interactions_services.InteractionService
}

func (c *InteractionController) RegisterRoutes(router gin.IRoutes) {
	for _, prefix := range []string{"", "/workspaces/:slug"} {
		router.GET(prefix+"/clients/:clientId/interactions", c.GetClientInteractions)
		router.POST(prefix+"/clients/:clientId/interactions", c.CreateInteraction)
	}
}

// GetClientInteractions
// @Summary List client interactions
// @Description List a client's interaction history, newest first
// @Tags interactions
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} interactions_dto.GetInteractionsResponseDTO
// @Failure 401
// @Failure 404
// @Router /clients/{clientId}/interactions [get]
func (c *InteractionController) GetClientInteractions(ctx *gin.Context) {
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

	response, err := c.interactionService.GetClientInteractions(workspace, clientID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateInteraction
// @Summary Log an interaction
// @Description Record a note, call, email or meeting against a client
// @Tags interactions
// @Accept json
// @Produce json
// @Param clientId path string true "Client ID"
// @Param request body interactions_dto.CreateInteractionRequestDTO true "Interaction data"
// @Success 201 {object} interactions_models.Interaction
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /clients/{clientId}/interactions [post]
func (c *InteractionController) CreateInteraction(ctx *gin.Context) {
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

	var request interactions_dto.CreateInteractionRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	interaction, err := c.interactionService.CreateInteraction(ctx.Request.Context(), workspace, clientID, &request)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, interaction)
}

func (c *InteractionController) respondError(ctx *gin.Context, err error) {
	if errors.Is(err, interactions_services.ErrInteractionClientNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
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
