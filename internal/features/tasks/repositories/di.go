package tasks_repositories

var taskRepository = &TaskRepository{}

func GetTaskRepository() *TaskRepository {
	return taskRepository
}
