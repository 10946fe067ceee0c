package tasks_models

import (
	"time"

	"github.com/google/uuid"
)

// Task always hangs off a client or a deal; its tenant is inherited from
// that parent when the task is created.
type Task struct {
	ID          uuid.UUID  `json:"id"          gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID  `json:"accountId"   gorm:"type:uuid;not null;index"`
	ClientID    *uuid.UUID `json:"clientId"    gorm:"type:uuid;index"`
	DealID      *uuid.UUID `json:"dealId"      gorm:"type:uuid;index"`
	Title       string     `json:"title"       gorm:"not null"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	CompletedAt *time.Time `json:"completedAt"`
	AssignedTo  *uuid.UUID `json:"assignedTo"  gorm:"type:uuid"`
	CreatedBy   uuid.UUID  `json:"createdBy"   gorm:"type:uuid;not null"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"not null"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Task) TableName() string {
	return "tasks"
}

func (t *Task) IsCompleted() bool {
	return t.CompletedAt != nil
}
