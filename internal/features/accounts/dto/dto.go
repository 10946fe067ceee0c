package accounts_dto

import (
	"time"

	accounts_enums "clientbase-backend/internal/features/accounts/enums"

	"github.com/google/uuid"
)

type CreateTeamAccountRequestDTO struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Slug string `json:"slug" binding:"required,min=1,max=255"`
}

// AccountSummaryDTO is the membership summary shown in the account switcher.
type AccountSummaryDTO struct {
	ID         uuid.UUID                  `json:"id"         gorm:"column:id"`
	Name       string                     `json:"name"       gorm:"column:name"`
	Slug       *string                    `json:"slug"       gorm:"column:slug"`
	PictureURL *string                    `json:"pictureUrl" gorm:"column:picture_url"`
	Role       accounts_enums.AccountRole `json:"role"       gorm:"column:role"`
}

type AccountMemberResponseDTO struct {
	UserID             uuid.UUID                  `json:"userId"             gorm:"column:user_id"`
	AccountID          uuid.UUID                  `json:"accountId"          gorm:"column:account_id"`
	Role               accounts_enums.AccountRole `json:"role"               gorm:"column:role"`
	RoleHierarchyLevel int                        `json:"roleHierarchyLevel" gorm:"column:role_hierarchy_level"`
	PrimaryOwnerUserID uuid.UUID                  `json:"primaryOwnerUserId" gorm:"column:primary_owner_user_id"`
	Name               string                     `json:"name"               gorm:"column:name"`
	Email              string                     `json:"email"              gorm:"column:email"`
	PictureURL         *string                    `json:"pictureUrl"         gorm:"column:picture_url"`
	CreatedAt          time.Time                  `json:"createdAt"          gorm:"column:created_at"`
	UpdatedAt          *time.Time                 `json:"updatedAt"          gorm:"column:updated_at"`
}

type GetMembersResponseDTO struct {
	Members      []AccountMemberResponseDTO `json:"members"`
	CanAddMember bool                       `json:"canAddMember"`
}
