package deals_models

import (
	"time"

	"github.com/google/uuid"
)

type SalesPipeline struct {
	ID        uuid.UUID       `json:"id"        gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID       `json:"accountId" gorm:"type:uuid;not null;index"`
	Name      string          `json:"name"      gorm:"not null"`
	IsDefault bool            `json:"isDefault" gorm:"not null;default:false"`
	Stages    []PipelineStage `json:"stages"    gorm:"foreignKey:PipelineID"`
	CreatedAt time.Time       `json:"createdAt" gorm:"not null"`
}

func (SalesPipeline) TableName() string {
	return "sales_pipelines"
}

// PipelineStage marks terminal outcomes with flags rather than names, so
// renaming "Closed Won" does not change semantics.
type PipelineStage struct {
	ID         uuid.UUID `json:"id"         gorm:"type:uuid;primaryKey"`
	PipelineID uuid.UUID `json:"pipelineId" gorm:"type:uuid;not null;index"`
	Name       string    `json:"name"       gorm:"not null"`
	SortOrder  int       `json:"sortOrder"  gorm:"not null"`
	IsClosed   bool      `json:"isClosed"   gorm:"not null;default:false"`
	IsLost     bool      `json:"isLost"     gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"createdAt"  gorm:"not null"`
}

func (PipelineStage) TableName() string {
	return "pipeline_stages"
}
