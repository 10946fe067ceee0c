package tasks_repositories

import (
	"errors"
	"time"

	tasks_dto "clientbase-backend/internal/features/tasks/dto"
	tasks_models "clientbase-backend/internal/features/tasks/models"
	"clientbase-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct{}

func (r *TaskRepository) CreateTask(task *tasks_models.Task) error {
	return storage.GetDb().Create(task).Error
}

// GetTaskByID returns nil without an error when no task exists.
func (r *TaskRepository) GetTaskByID(taskID uuid.UUID) (*tasks_models.Task, error) {
	var task tasks_models.Task

	err := storage.GetDb().Where("id = ?", taskID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) GetTasks(
	accountID uuid.UUID,
	request *tasks_dto.GetTasksRequestDTO,
) ([]tasks_models.Task, error) {
	query := storage.GetDb().Where("account_id = ?", accountID)

	if request.ClientID != nil {
		query = query.Where("client_id = ?", *request.ClientID)
	}

	if request.DealID != nil {
		query = query.Where("deal_id = ?", *request.DealID)
	}

	if request.PendingOnly {
		query = query.Where("completed_at IS NULL")
	}

	if request.OverdueBefore != nil {
		query = query.Where("due_date < ? AND completed_at IS NULL", *request.OverdueBefore)
	}

	var tasks []tasks_models.Task
	err := query.Order("due_date ASC NULLS LAST, created_at DESC").Find(&tasks).Error

	return tasks, err
}

func (r *TaskRepository) CountPendingTasks(accountID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&tasks_models.Task{}).
		Where("account_id = ? AND completed_at IS NULL", accountID).
		Count(&count).Error

	return count, err
}

func (r *TaskRepository) UpdateTask(task *tasks_models.Task) error {
	task.UpdatedAt = time.Now().UTC()
	return storage.GetDb().Save(task).Error
}

func (r *TaskRepository) DeleteTask(taskID uuid.UUID) error {
	return storage.GetDb().Where("id = ?", taskID).Delete(&tasks_models.Task{}).Error
}
