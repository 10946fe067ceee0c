package customfields

import (
	"errors"
	"time"

	"clientbase-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomFieldRepository struct{}

func (r *CustomFieldRepository) CreateDefinition(definition *FieldDefinition) error {
	return storage.GetDb().Create(definition).Error
}

// GetDefinitionByID returns nil without an error when no definition exists.
func (r *CustomFieldRepository) GetDefinitionByID(
	definitionID uuid.UUID,
) (*FieldDefinition, error) {
	var definition FieldDefinition

	err := storage.GetDb().Where("id = ?", definitionID).First(&definition).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &definition, nil
}

func (r *CustomFieldRepository) GetDefinitions(
	accountID uuid.UUID,
	entityType EntityType,
) ([]FieldDefinition, error) {
	var definitions []FieldDefinition

	err := storage.GetDb().
		Where("account_id = ? AND entity_type = ?", accountID, entityType).
		Order("sort_order ASC, created_at ASC").
		Find(&definitions).Error

	return definitions, err
}

func (r *CustomFieldRepository) DeleteDefinition(definitionID uuid.UUID) error {
	db := storage.GetDb()

	if err := db.Where("field_id = ?", definitionID).Delete(&FieldValue{}).Error; err != nil {
		return err
	}

	return db.Where("id = ?", definitionID).Delete(&FieldDefinition{}).Error
}

// UpsertValue writes the value for (field, entity), replacing any previous
// one.
func (r *CustomFieldRepository) UpsertValue(value *FieldValue) error {
	value.UpdatedAt = time.Now().UTC()

	return storage.GetDb().
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "field_id"}, {Name: "entity_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(value).Error
}

// GetValuesForEntity only returns values whose definition belongs to the
// given account, so foreign definitions never leak through a shared entity id.
func (r *CustomFieldRepository) GetValuesForEntity(
	accountID uuid.UUID,
	entityID uuid.UUID,
) ([]FieldValue, error) {
	var values []FieldValue

	err := storage.GetDb().
		Joins(
			"JOIN custom_field_definitions ON custom_field_definitions.id = custom_field_values.field_id",
		).
		Where(
			"custom_field_definitions.account_id = ? AND custom_field_values.entity_id = ?",
			accountID,
			entityID,
		).
		Find(&values).Error

	return values, err
}
