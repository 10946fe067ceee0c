package deals_services

import (
	"sync"

	"clientbase-backend/internal/features/audit_logs"
	"clientbase-backend/internal/features/revalidation"

	clients_repositories "clientbase-backend/internal/features/clients/repositories"
	deals_repositories "clientbase-backend/internal/features/deals/repositories"
)

var (
	dealService     *DealService
	dealServiceOnce sync.Once
)

func GetDealService() *DealService {
	dealServiceOnce.Do(func() {
		dealService = &DealService{
			deals_repositories.GetDealRepository(),
			deals_repositories.GetPipelineRepository(),
			clients_repositories.GetClientRepository(),
			audit_logs.GetAuditLogService(),
			revalidation.GetRevalidationService(),
		}
	})

	return dealService
}
