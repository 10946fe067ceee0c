package customfields

import (
	"sync"

	clients_repositories "clientbase-backend/internal/features/clients/repositories"
	deals_repositories "clientbase-backend/internal/features/deals/repositories"
)

var (
	customFieldRepository = &CustomFieldRepository{}

	customFieldService     *CustomFieldService
	customFieldServiceOnce sync.Once

	customFieldController     *CustomFieldController
	customFieldControllerOnce sync.Once
)

func GetCustomFieldRepository() *CustomFieldRepository {
	return customFieldRepository
}

func GetCustomFieldService() *CustomFieldService {
	customFieldServiceOnce.Do(func() {
		customFieldService = &CustomFieldService{
			customFieldRepository,
			clients_repositories.GetClientRepository(),
			deals_repositories.GetDealRepository(),
		}
	})

	return customFieldService
}

func GetCustomFieldController() *CustomFieldController {
	customFieldControllerOnce.Do(func() {
		customFieldController = &CustomFieldController{GetCustomFieldService()}
	})

	return customFieldController
}
