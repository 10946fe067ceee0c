package clients_models

import (
	"time"

	clients_enums "clientbase-backend/internal/features/clients/enums"

	"github.com/google/uuid"
)

type Client struct {
	ID        uuid.UUID                  `json:"id"        gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID                  `json:"accountId" gorm:"type:uuid;not null;index"`
	Name      string                     `json:"name"      gorm:"not null"`
	Email     *string                    `json:"email"`
	Phone     *string                    `json:"phone"`
	Company   *string                    `json:"company"`
	Status    clients_enums.ClientStatus `json:"status"    gorm:"not null;default:'lead'"`
	Source    *string                    `json:"source"`
	Notes     *string                    `json:"notes"`
	CreatedBy uuid.UUID                  `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt time.Time                  `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time                  `json:"updatedAt"`
}

func (Client) TableName() string {
	return "clients"
}
