package interactions_repositories

import (
	interactions_models "clientbase-backend/internal/features/interactions/models"
	"clientbase-backend/internal/storage"

	"github.com/google/uuid"
)

type InteractionRepository struct{}

func (r *InteractionRepository) CreateInteraction(
	interaction *interactions_models.Interaction,
) error {
	return storage.GetDb().Create(interaction).Error
}

func (r *InteractionRepository) GetClientInteractions(
	accountID uuid.UUID,
	clientID uuid.UUID,
) ([]interactions_models.Interaction, error) {
	var interactions []interactions_models.Interaction

	err := storage.GetDb().
		Where("account_id = ? AND client_id = ?", accountID, clientID).
		Order("occurred_at DESC").
		Find(&interactions).Error

	return interactions, err
}

func (r *InteractionRepository) DeleteInteraction(interactionID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", interactionID).
		Delete(&interactions_models.Interaction{}).Error
}
