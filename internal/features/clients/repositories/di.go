package clients_repositories

var clientRepository = &ClientRepository{}

func GetClientRepository() *ClientRepository {
	return clientRepository
}
