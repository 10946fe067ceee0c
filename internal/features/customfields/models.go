package customfields

import (
	"time"

	"github.com/google/uuid"
)

type EntityType string

const (
	EntityTypeClient EntityType = "client"
	EntityTypeDeal   EntityType = "deal"
)

func (t EntityType) IsValid() bool {
	return t == EntityTypeClient || t == EntityTypeDeal
}

type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
	FieldTypeSelect FieldType = "select"
)

func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate, FieldTypeSelect:
		return true
	}

	return false
}

// FieldDefinition is the per-account schema for extra client or deal fields.
// Options is a comma-separated list and only meaningful for select fields.
type FieldDefinition struct {
	ID         uuid.UUID  `json:"id"         gorm:"type:uuid;primaryKey"`
	AccountID  uuid.UUID  `json:"accountId"  gorm:"type:uuid;not null;index"`
	EntityType EntityType `json:"entityType" gorm:"not null"`
	Name       string     `json:"name"       gorm:"not null"`
	FieldType  FieldType  `json:"fieldType"  gorm:"not null"`
	Options    *string    `json:"options"`
	SortOrder  int        `json:"sortOrder"  gorm:"not null;default:0"`
	CreatedAt  time.Time  `json:"createdAt"  gorm:"not null"`
}

func (FieldDefinition) TableName() string {
	return "custom_field_definitions"
}

// FieldValue holds one entity's value for one definition. (field_id,
// entity_id) is unique, so writes are upserts.
type FieldValue struct {
	ID        uuid.UUID `json:"id"       gorm:"type:uuid;primaryKey"`
	FieldID   uuid.UUID `json:"fieldId"  gorm:"type:uuid;not null;uniqueIndex:idx_field_entity"`
	EntityID  uuid.UUID `json:"entityId" gorm:"type:uuid;not null;uniqueIndex:idx_field_entity"`
	Value     string    `json:"value"    gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (FieldValue) TableName() string {
	return "custom_field_values"
}
