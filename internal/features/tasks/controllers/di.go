package tasks_controllers

import (
	"sync"

	tasks_services "clientbase-backend/internal/features/tasks/services"
)

var (
	taskController     *TaskController
	taskControllerOnce sync.Once
)

func GetTaskController() *TaskController {
	taskControllerOnce.Do(func() {
		taskController = &TaskController{tasks_services.GetTaskService()}
	})

	return taskController
}
