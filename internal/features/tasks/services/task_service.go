package tasks_services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clientbase-backend/internal/features/revalidation"
	"clientbase-backend/internal/features/workspaces"
	"clientbase-backend/internal/util/dberr"

	accounts_enums "clientbase-backend/internal/features/accounts/enums"
	clients_repositories "clientbase-backend/internal/features/clients/repositories"
	deals_repositories "clientbase-backend/internal/features/deals/repositories"
	tasks_dto "clientbase-backend/internal/features/tasks/dto"
	tasks_models "clientbase-backend/internal/features/tasks/models"
	tasks_repositories "clientbase-backend/internal/features/tasks/repositories"

	"github.com/google/uuid"
)

var (
	ErrTaskNotInWorkspace = errors.New("task not found in this workspace")

	// ErrTaskNeedsParent enforces that a task is anchored to a client or a
	// deal; the tenant is taken from that parent.
	ErrTaskNeedsParent = errors.New("task requires a client or a deal")
)

type TaskService struct {
	taskRepository      *tasks_repositories.TaskRepository
	clientRepository    *clients_repositories.ClientRepository
	dealRepository      *deals_repositories.DealRepository
	revalidationService *revalidation.RevalidationService
}

func (s *TaskService) GetTasks(
	workspace *workspaces.AccountWorkspace,
	request *tasks_dto.GetTasksRequestDTO,
) (*tasks_dto.GetTasksResponseDTO, error) {
	tasks, err := s.taskRepository.GetTasks(workspace.AccountID, request)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	return &tasks_dto.GetTasksResponseDTO{Tasks: tasks}, nil
}

func (s *TaskService) CreateTask(
	ctx context.Context,
	workspace *workspaces.AccountWorkspace,
	request *tasks_dto.CreateTaskRequestDTO,
) (*tasks_models.Task, error) {
	if !workspace.Can(accounts_enums.PermissionTasksCreate) {
		return nil, errors.New("insufficient permissions to create tasks")
	}

	accountID, err := s.resolveParentAccount(workspace, request.ClientID, request.DealID)
	if err != nil {
		return nil, err
	}

	task := &tasks_models.Task{
		ID:          uuid.New(),
		AccountID:   accountID,
		ClientID:    request.ClientID,
		DealID:      request.DealID,
		Title:       request.Title,
		Description: request.Description,
		DueDate:     request.DueDate,
		AssignedTo:  request.AssignedTo,
		CreatedBy:   workspace.UserID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.taskRepository.CreateTask(task); err != nil {
		return nil, errors.New(dberr.UserMessage("create this task", err))
	}

	s.revalidationService.MarkStale(ctx,
		revalidation.TasksTag(workspace.AccountID),
		revalidation.DashboardTag(workspace.AccountID),
	)

	return task, nil
}

func (s *TaskService) UpdateTask(
	ctx context.Context,
	workspace *workspaces.AccountWorkspace,
	taskID uuid.UUID,
	request *tasks_dto.UpdateTaskRequestDTO,
) (*tasks_models.Task, error) {
	if !workspace.Can(accounts_enums.PermissionTasksUpdate) {
		return nil, errors.New("insufficient permissions to update tasks")
	}

	task, err := s.getWorkspaceTask(workspace, taskID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		task.Title = *request.Title
	}

	if request.Description != nil {
		task.Description = request.Description
	}

	if request.DueDate != nil {
		task.DueDate = request.DueDate
	}

	if request.AssignedTo != nil {
		task.AssignedTo = request.AssignedTo
	}

	if request.Completed != nil {
		if *request.Completed && task.CompletedAt == nil {
			now := time.Now().UTC()
			task.CompletedAt = &now
		}

		if !*request.Completed {
			task.CompletedAt = nil
		}
	}

	if err := s.taskRepository.UpdateTask(task); err != nil {
		return nil, errors.New(dberr.UserMessage("update this task", err))
	}

	s.revalidationService.MarkStale(ctx,
		revalidation.TasksTag(workspace.AccountID),
		revalidation.DashboardTag(workspace.AccountID),
	)

	return task, nil
}

func (s *TaskService) DeleteTask(
	ctx context.Context,
	workspace *workspaces.AccountWorkspace,
	taskID uuid.UUID,
) error {
	if !workspace.Can(accounts_enums.PermissionTasksDelete) {
		return errors.New("insufficient permissions to delete tasks")
	}

	task, err := s.getWorkspaceTask(workspace, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepository.DeleteTask(task.ID); err != nil {
		return errors.New(dberr.UserMessage("delete this task", err))
	}

	s.revalidationService.MarkStale(ctx,
		revalidation.TasksTag(workspace.AccountID),
		revalidation.DashboardTag(workspace.AccountID),
	)

	return nil
}

func (s *TaskService) getWorkspaceTask(
	workspace *workspaces.AccountWorkspace,
	taskID uuid.UUID,
) (*tasks_models.Task, error) {
	task, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if task == nil || task.AccountID != workspace.AccountID {
		return nil, ErrTaskNotInWorkspace
	}

	return task, nil
}

func (s *TaskService) resolveParentAccount(
	workspace *workspaces.AccountWorkspace,
	clientID *uuid.UUID,
	dealID *uuid.UUID,
) (uuid.UUID, error) {
	if clientID != nil {
		client, err := s.clientRepository.GetClientByID(*clientID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to resolve client: %w", err)
		}

		if client == nil || client.AccountID != workspace.AccountID {
			return uuid.Nil, ErrTaskNotInWorkspace
		}

		return client.AccountID, nil
	}

	if dealID != nil {
		deal, err := s.dealRepository.GetDealByID(*dealID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to resolve deal: %w", err)
		}

		if deal == nil || deal.AccountID != workspace.AccountID {
			return uuid.Nil, ErrTaskNotInWorkspace
		}

		return deal.AccountID, nil
	}

	return uuid.Nil, ErrTaskNeedsParent
}
