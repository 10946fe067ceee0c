package interactions_dto

import (
	"time"

	interactions_enums "clientbase-backend/internal/features/interactions/enums"
	interactions_models "clientbase-backend/internal/features/interactions/models"

	"github.com/google/uuid"
)

type CreateInteractionRequestDTO struct {
	DealID     *uuid.UUID                         `json:"dealId"`
	Type       interactions_enums.InteractionType `json:"type" binding:"required"`
	Content    string                             `json:"content" binding:"required"`
	OccurredAt *time.Time                         `json:"occurredAt"`
}

type GetInteractionsResponseDTO struct {
	Interactions []interactions_models.Interaction `json:"interactions"`
}
