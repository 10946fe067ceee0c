package customfields

import (
	"errors"
	"net/http"
	"strings"

	"clientbase-backend/internal/features/workspaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomFieldController struct {
	customFieldService *CustomFieldService
}

func (c *CustomFieldController) RegisterRoutes(router gin.IRoutes) {
	for _, prefix := range []string{"", "/workspaces/:slug"} {
		router.GET(prefix+"/custom-fields", c.GetDefinitions)
		router.POST(prefix+"/custom-fields", c.CreateDefinition)
		router.DELETE(prefix+"/custom-fields/:fieldId", c.DeleteDefinition)
		router.PUT(prefix+"/custom-fields/:fieldId/values", c.SetValue)
		router.GET(prefix+"/custom-fields/values/:entityId", c.GetValuesForEntity)
	}
}

// GetDefinitions
// @Summary List custom field definitions
// @Description List the workspace's custom fields for clients or deals
// @Tags custom-fields
// @Produce json
// @Param entityType query string true "client or deal"
// @Success 200 {array} FieldDefinition
// @Failure 401
// @Router /custom-fields [get]
func (c *CustomFieldController) GetDefinitions(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	definitions, err := c.customFieldService.GetDefinitions(workspace, EntityType(ctx.Query("entityType")))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, definitions)
}

// CreateDefinition
// @Summary Create a custom field
// @Description Define a new custom field for clients or deals
// @Tags custom-fields
// @Accept json
// @Produce json
// @Param request body CreateDefinitionRequest true "Field definition"
// @Success 201 {object} FieldDefinition
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /custom-fields [post]
func (c *CustomFieldController) CreateDefinition(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var request CreateDefinitionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	definition, err := c.customFieldService.CreateDefinition(workspace, &request)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, definition)
}

// DeleteDefinition
// @Summary Delete a custom field
// @Description Delete a custom field definition and its values
// @Tags custom-fields
// @Param fieldId path string true "Field ID"
// @Success 204
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /custom-fields/{fieldId} [delete]
func (c *CustomFieldController) DeleteDefinition(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fieldID, err := uuid.Parse(ctx.Param("fieldId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid field ID"})
		return
	}

	if err := c.customFieldService.DeleteDefinition(workspace, fieldID); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetValue
// @Summary Set a custom field value
// @Description Write the value of a custom field for an entity
// @Tags custom-fields
// @Accept json
// @Produce json
// @Param fieldId path string true "Field ID"
// @Param request body SetValueRequest true "Value data"
// @Success 200 {object} FieldValue
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /custom-fields/{fieldId}/values [put]
func (c *CustomFieldController) SetValue(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fieldID, err := uuid.Parse(ctx.Param("fieldId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid field ID"})
		return
	}

	var request SetValueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	value, err := c.customFieldService.SetValue(workspace, fieldID, &request)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, value)
}

// GetValuesForEntity
// @Summary Get custom field values
// @Description Get all custom field values stored for an entity
// @Tags custom-fields
// @Produce json
// @Param entityId path string true "Entity ID"
// @Success 200 {array} FieldValue
// @Failure 401
// @Failure 404
// @Router /custom-fields/values/{entityId} [get]
func (c *CustomFieldController) GetValuesForEntity(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	entityID, err := uuid.Parse(ctx.Param("entityId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid entity ID"})
		return
	}

	values, err := c.customFieldService.GetValuesForEntity(workspace, entityID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, values)
}

func (c *CustomFieldController) respondError(ctx *gin.Context, err error) {
	if errors.Is(err, ErrFieldNotInWorkspace) || errors.Is(err, ErrEntityNotInWorkspace) {
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
