package clients_controllers

import (
	"sync"

	clients_services "clientbase-backend/internal/features/clients/services"
)

var (
	clientController     *ClientController
	clientControllerOnce sync.Once
)

func GetClientController() *ClientController {
	clientControllerOnce.Do(func() {
		clientController = &ClientController{clients_services.GetClientService()}
	})

	return clientController
}
