package accounts_models

import (
	"time"

	"github.com/google/uuid"
)

// Account is either a personal account (one per user, id = user id, nil slug)
// or a team account with a slug and a primary owner.
type Account struct {
	ID                 uuid.UUID `json:"id"                 gorm:"column:id"`
	Name               string    `json:"name"               gorm:"column:name"`
	Slug               *string   `json:"slug"               gorm:"column:slug"`
	IsPersonalAccount  bool      `json:"isPersonalAccount"  gorm:"column:is_personal_account"`
	PrimaryOwnerUserID uuid.UUID `json:"primaryOwnerUserId" gorm:"column:primary_owner_user_id"`
	PictureURL         *string   `json:"pictureUrl"         gorm:"column:picture_url"`
	CreatedAt          time.Time `json:"createdAt"          gorm:"column:created_at"`
	UpdatedAt          time.Time `json:"updatedAt"          gorm:"column:updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}
