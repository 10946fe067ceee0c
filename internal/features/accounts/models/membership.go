package accounts_models

import (
	"time"

	accounts_enums "clientbase-backend/internal/features/accounts/enums"

	"github.com/google/uuid"
)

type Membership struct {
	ID        uuid.UUID                  `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID                  `json:"userId"    gorm:"column:user_id"`
	AccountID uuid.UUID                  `json:"accountId" gorm:"column:account_id"`
	Role      accounts_enums.AccountRole `json:"role"      gorm:"column:account_role"`
	CreatedAt time.Time                  `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time                  `json:"updatedAt" gorm:"column:updated_at"`
}

func (Membership) TableName() string {
	return "accounts_memberships"
}
