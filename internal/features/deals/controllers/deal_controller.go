package deals_controllers

import (
	"errors"
	"net/http"
	"strings"

	"clientbase-backend/internal/features/workspaces"

	deals_dto "clientbase-backend/internal/features/deals/dto"
	deals_services "clientbase-backend/internal/features/deals/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DealController struct {
	dealService *deals_services.DealService
}

func (c *DealController) RegisterRoutes(router gin.IRoutes) {
	for _, prefix := range []string{"", "/workspaces/:slug"} {
		router.GET(prefix+"/pipelines", c.GetPipelines)
		router.GET(prefix+"/deals/board", c.GetDealsBoard)
		router.GET(prefix+"/deals/stats", c.GetDealStats)
		router.POST(prefix+"/deals", c.CreateDeal)
		router.PUT(prefix+"/deals/:dealId", c.UpdateDeal)
		router.PUT(prefix+"/deals/:dealId/stage", c.MoveDeal)
		router.DELETE(prefix+"/deals/:dealId", c.DeleteDeal)
	}
}

// GetPipelines
// @Summary List sales pipelines
// @Description List the workspace's pipelines with their ordered stages
// @Tags deals
// @Produce json
// @Success 200 {array} deals_models.SalesPipeline
// @Failure 401
// @Router /pipelines [get]
func (c *DealController) GetPipelines(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	pipelines, err := c.dealService.GetPipelines(workspace)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, pipelines)
}

// GetDealsBoard
// @Summary Get the deals board
// @Description Get deals grouped by pipeline stage, with client names joined in
// @Tags deals
// @Produce json
// @Param pipelineId query string false "Pipeline ID; the default pipeline when omitted"
// @Success 200 {object} deals_dto.DealsBoardResponseDTO
// @Failure 401
// @Failure 404
// @Router /deals/board [get]
func (c *DealController) GetDealsBoard(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var pipelineID *uuid.UUID
	if raw := ctx.Query("pipelineId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid pipeline ID"})
			return
		}

		pipelineID = &parsed
	}

	board, err := c.dealService.GetDealsBoard(workspace, pipelineID)
	if err != nil {
		if errors.Is(err, deals_services.ErrNoPipeline) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, board)
}

// GetDealStats
// @Summary Get deal statistics
// @Description Get deal counts and pipeline value totals
// @Tags deals
// @Produce json
// @Success 200 {object} deals_dto.DealStatsDTO
// @Failure 401
// @Router /deals/stats [get]
func (c *DealController) GetDealStats(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx.JSON(http.StatusOK, c.dealService.GetDealStats(workspace))
}

// CreateDeal
// @Summary Create a deal
// @Description Create a deal for a client in the workspace
// @Tags deals
// @Accept json
// @Produce json
// @Param request body deals_dto.CreateDealRequestDTO true "Deal data"
// @Success 201 {object} deals_models.Deal
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /deals [post]
func (c *DealController) CreateDeal(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var request deals_dto.CreateDealRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	deal, err := c.dealService.CreateDeal(ctx.Request.Context(), workspace, &request)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, deal)
}

// UpdateDeal
// @Summary Update a deal
// @Description Update fields of an existing deal
// @Tags deals
// @Accept json
// @Produce json
// @Param dealId path string true "Deal ID"
// @Param request body deals_dto.UpdateDealRequestDTO true "Fields to update"
// @Success 200 {object} deals_models.Deal
// @Failure 303
// @Failure 401
// @Failure 403
// @Router /deals/{dealId} [put]
func (c *DealController) UpdateDeal(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dealID, err := uuid.Parse(ctx.Param("dealId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid deal ID"})
		return
	}

	var request deals_dto.UpdateDealRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	deal, err := c.dealService.UpdateDeal(ctx.Request.Context(), workspace, dealID, &request)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deal)
}

// MoveDeal
// @Summary Move a deal to another stage
// @Description Move a deal and rederive its status and close date
// @Tags deals
// @Accept json
// @Produce json
// @Param dealId path string true "Deal ID"
// @Param request body deals_dto.MoveDealRequestDTO true "Target stage"
// @Success 200 {object} deals_models.Deal
// @Failure 303
// @Failure 401
// @Failure 403
// @Router /deals/{dealId}/stage [put]
func (c *DealController) MoveDeal(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dealID, err := uuid.Parse(ctx.Param("dealId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid deal ID"})
		return
	}

	var request deals_dto.MoveDealRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	deal, err := c.dealService.MoveDeal(ctx.Request.Context(), workspace, dealID, request.StageID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deal)
}

// DeleteDeal
// @Summary Delete a deal
// @Description Delete a deal from the workspace
// @Tags deals
// @Param dealId path string true "Deal ID"
// @Success 204
// @Failure 303
// @Failure 401
// @Failure 403
// @Router /deals/{dealId} [delete]
func (c *DealController) DeleteDeal(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dealID, err := uuid.Parse(ctx.Param("dealId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid deal ID"})
		return
	}

	if err := c.dealService.DeleteDeal(ctx.Request.Context(), workspace, dealID); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *DealController) respondError(ctx *gin.Context, err error) {
	if errors.Is(err, deals_services.ErrDealNotInWorkspace) {
		ctx.Redirect(http.StatusSeeOther, c.listPath(ctx))
		return
	}

	if errors.Is(err, deals_services.ErrNoPipeline) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if strings.Contains(err.Error(), "permission") {
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	if strings.Contains(err.Error(), "stage does not belong") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (c *DealController) listPath(ctx *gin.Context) string {
	if slug := ctx.Param("slug"); slug != "" {
		return "/workspaces/" + slug + "/deals/board"
	}

	return "/deals/board"
}
