package dashboard

import (
	"sync"

	accounts_repositories "clientbase-backend/internal/features/accounts/repositories"
	clients_repositories "clientbase-backend/internal/features/clients/repositories"
)

var (
	dashboardService     *DashboardService
	dashboardServiceOnce sync.Once

	dashboardController     *DashboardController
	dashboardControllerOnce sync.Once
)

func GetDashboardService() *DashboardService {
	dashboardServiceOnce.Do(func() {
		dashboardService = &DashboardService{
			accounts_repositories.GetMembershipRepository(),
			accounts_repositories.GetAccountRepository(),
			clients_repositories.GetClientRepository(),
		}
	})

	return dashboardService
}

func GetDashboardController() *DashboardController {
	dashboardControllerOnce.Do(func() {
		dashboardController = &DashboardController{GetDashboardService()}
	})

	return dashboardController
}
