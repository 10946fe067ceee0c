package invitations

import (
	"time"

	accounts_enums "clientbase-backend/internal/features/accounts/enums"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRevoked  InvitationStatus = "revoked"
)

type Invitation struct {
	ID        uuid.UUID                  `json:"id"        gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID                  `json:"accountId" gorm:"type:uuid;not null;index"`
	Email     string                     `json:"email"     gorm:"not null"`
	Role      accounts_enums.AccountRole `json:"role"      gorm:"not null"`
	InvitedBy uuid.UUID                  `json:"invitedBy" gorm:"type:uuid;not null"`
	Status    InvitationStatus           `json:"status"    gorm:"not null;default:'pending'"`
	ExpiresAt time.Time                  `json:"expiresAt" gorm:"not null"`
	CreatedAt time.Time                  `json:"createdAt" gorm:"not null"`
}

func (Invitation) TableName() string {
	return "invitations"
}
