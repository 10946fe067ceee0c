package deals_models

import (
	"time"

	deals_enums "clientbase-backend/internal/features/deals/enums"

	"github.com/google/uuid"
)

type Deal struct {
	ID                uuid.UUID              `json:"id"         gorm:"type:uuid;primaryKey"`
	AccountID         uuid.UUID              `json:"accountId"  gorm:"type:uuid;not null;index"`
	ClientID          uuid.UUID              `json:"clientId"   gorm:"type:uuid;not null;index"`
	PipelineID        uuid.UUID              `json:"pipelineId" gorm:"type:uuid;not null"`
	StageID           uuid.UUID              `json:"stageId"    gorm:"type:uuid;not null"`
	Title             string                 `json:"title"      gorm:"not null"`
	Amount            *float64               `json:"amount"`
	Currency          string                 `json:"currency"   gorm:"not null;default:'USD'"`
	Status            deals_enums.DealStatus `json:"status"     gorm:"not null;default:'open'"`
	ExpectedCloseDate *time.Time             `json:"expectedCloseDate"`
	ActualCloseDate   *time.Time             `json:"actualCloseDate"`
	CreatedBy         uuid.UUID              `json:"createdBy"  gorm:"type:uuid;not null"`
	CreatedAt         time.Time              `json:"createdAt"  gorm:"not null"`
	UpdatedAt         time.Time              `json:"updatedAt"`
}

func (Deal) TableName() string {
	return "deals"
}
