package interactions_models

import (
	"time"

	interactions_enums "clientbase-backend/internal/features/interactions/enums"

	"github.com/google/uuid"
)

type Interaction struct {
	ID         uuid.UUID                          `json:"id"         gorm:"type:uuid;primaryKey"`
	AccountID  uuid.UUID                          `json:"accountId"  gorm:"type:uuid;not null;index"`
	ClientID   uuid.UUID                          `json:"clientId"   gorm:"type:uuid;not null;index"`
	DealID     *uuid.UUID                         `json:"dealId"     gorm:"type:uuid"`
	Type       interactions_enums.InteractionType `json:"type"       gorm:"not null"`
	Content    string                             `json:"content"    gorm:"not null"`
	OccurredAt time.Time                          `json:"occurredAt" gorm:"not null"`
	CreatedBy  uuid.UUID                          `json:"createdBy"  gorm:"type:uuid;not null"`
	CreatedAt  time.Time                          `json:"createdAt"  gorm:"not null"`
}

func (Interaction) TableName() string {
	return "interactions"
}
