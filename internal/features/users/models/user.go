package users_models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"         gorm:"column:id"`
	Email          string    `json:"email"      gorm:"column:email"`
	Name           string    `json:"name"       gorm:"column:name"`
	HashedPassword *string   `json:"-"          gorm:"column:hashed_password"`
	PictureURL     *string   `json:"pictureUrl" gorm:"column:picture_url"`
	CreatedAt      time.Time `json:"createdAt"  gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updatedAt"  gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}
