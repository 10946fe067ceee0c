package interactions_services

import (
	"sync"

	"clientbase-backend/internal/features/revalidation"

	clients_repositories "clientbase-backend/internal/features/clients/repositories"
	interactions_repositories "clientbase-backend/internal/features/interactions/repositories"
)

var (
	interactionService     *InteractionService
	interactionServiceOnce sync.Once
)

func GetInteractionService() *InteractionService {
	interactionServiceOnce.Do(func() {
		interactionService = &InteractionService{
			interactions_repositories.GetInteractionRepository(),
			clients_repositories.GetClientRepository(),
			revalidation.GetRevalidationService(),
		}
	})

	return interactionService
}
