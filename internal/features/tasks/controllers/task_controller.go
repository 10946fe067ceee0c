package tasks_controllers

import (
	"errors"
	"net/http"
	"strings"

	"clientbase-backend/internal/features/workspaces"

	tasks_dto "clientbase-backend/internal/features/tasks/dto"
	tasks_services "clientbase-backend/internal/features/tasks/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskController struct {
	taskService *tasks_services.TaskService
}

func (c *TaskController) RegisterRoutes(router gin.IRoutes) {
	for _, prefix := range []string{"", "/workspaces/:slug"} {
		router.GET(prefix+"/tasks", c.GetTasks)
		router.POST(prefix+"/tasks", c.CreateTask)
		router.PUT(prefix+"/tasks/:taskId", c.UpdateTask)
		router.DELETE(prefix+"/tasks/:taskId", c.DeleteTask)
	}
}

// GetTasks
// @Summary List tasks
// @Description List workspace tasks with optional parent and due-date filters
// @Tags tasks
// @Produce json
// @Param clientId query string false "Filter by client"
// @Param dealId query string false "Filter by deal"
// @Param pendingOnly query bool false "Only tasks not yet completed"
// @Success 200 {object} tasks_dto.GetTasksResponseDTO
// @Failure 401
// @Router /tasks [get]
func (c *TaskController) GetTasks(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var request tasks_dto.GetTasksRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	response, err := c.taskService.GetTasks(workspace, &request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateTask
// @Summary Create a task
// @Description Create a task attached to a client or a deal
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body tasks_dto.CreateTaskRequestDTO true "Task data"
// @Success 201 {object} tasks_models.Task
// @Failure 400
// @Failure 401
// @Failure 403
// @Router /tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var request tasks_dto.CreateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	task, err := c.taskService.CreateTask(ctx.Request.Context(), workspace, &request)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

// UpdateTask
// @Summary Update a task
// @Description Update task fields or toggle completion
// @Tags tasks
// @Accept json
// @Produce json
// @Param taskId path string true "Task ID"
// @Param request body tasks_dto.UpdateTaskRequestDTO true "Fields to update"
// @Success 200 {object} tasks_models.Task
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /tasks/{taskId} [put]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	var request tasks_dto.UpdateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	task, err := c.taskService.UpdateTask(ctx.Request.Context(), workspace, taskID, &request)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// DeleteTask
// @Summary Delete a task
// @Description Delete a task from the workspace
// @Tags tasks
// @Param taskId path string true "Task ID"
// @Success 204
// @Failure 401
// @Failure 403
// @Failure 404
// @Router /tasks/{taskId} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	workspace, ok := workspaces.GetWorkspaceFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid task ID"})
		return
	}

	if err := c.taskService.DeleteTask(ctx.Request.Context(), workspace, taskID); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *TaskController) respondError(ctx *gin.Context, err error) {
	if errors.Is(err, tasks_services.ErrTaskNotInWorkspace) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if errors.Is(err, tasks_services.ErrTaskNeedsParent) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.Contains(err.Error(), "permission") {
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
