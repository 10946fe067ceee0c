package tasks_services

import (
	"sync"

	"clientbase-backend/internal/features/revalidation"

	clients_repositories "clientbase-backend/internal/features/clients/repositories"
	deals_repositories "clientbase-backend/internal/features/deals/repositories"
	tasks_repositories "clientbase-backend/internal/features/tasks/repositories"
)

var (
	taskService     *TaskService
	taskServiceOnce sync.Once
)

func GetTaskService() *TaskService {
	taskServiceOnce.Do(func() {
		taskService = &TaskService{
			tasks_repositories.GetTaskRepository(),
			clients_repositories.GetClientRepository(),
			deals_repositories.GetDealRepository(),
			revalidation.GetRevalidationService(),
		}
	})

	return taskService
}
