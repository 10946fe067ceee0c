package clients_services

import (
	"sync"

	"clientbase-backend/internal/features/audit_logs"
	"clientbase-backend/internal/features/revalidation"

	clients_repositories "clientbase-backend/internal/features/clients/repositories"
)

var (
	clientService     *ClientService
	clientServiceOnce sync.Once
)

func GetClientService() *ClientService {
	clientServiceOnce.Do(func() {
		clientService = &ClientService{
			clients_repositories.GetClientRepository(),
			audit_logs.GetAuditLogService(),
			revalidation.GetRevalidationService(),
		}
	})

	return clientService
}
