package tasks_dto

import (
	"time"

	tasks_models "clientbase-backend/internal/features/tasks/models"

	"github.com/google/uuid"
)

type CreateTaskRequestDTO struct {
	ClientID    *uuid.UUID `json:"clientId"`
	DealID      *uuid.UUID `json:"dealId"`
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
}

type UpdateTaskRequestDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
	Completed   *bool      `json:"completed"`
}

type GetTasksRequestDTO struct {
	ClientID      *uuid.UUID `form:"clientId"`
	DealID        *uuid.UUID `form:"dealId"`
	PendingOnly   bool       `form:"pendingOnly"`
	OverdueBefore *time.Time `form:"overdueBefore"`
}

type GetTasksResponseDTO struct {
	Tasks []tasks_models.Task `json:"tasks"`
}
