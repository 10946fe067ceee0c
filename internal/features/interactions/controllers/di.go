package interactions_controllers

import (
	"sync"

	interactions_services "clientbase-backend/internal/features/interactions/services"
)

var (
	interactionController     *InteractionController
	interactionControllerOnce sync.Once
)

func GetInteractionController() *InteractionController {
	interactionControllerOnce.Do(func() {
		interactionController = &InteractionController{interactions_services.GetInteractionService()}
	})

	return interactionController
}
