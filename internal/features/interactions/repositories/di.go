package interactions_repositories

var interactionRepository = &InteractionRepository{}

func GetInteractionRepository() *InteractionRepository {
	return interactionRepository
}
