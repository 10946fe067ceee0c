package deals_repositories

import (
	"errors"

	deals_models "clientbase-backend/internal/features/deals/models"
	"clientbase-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PipelineRepository struct{}

func (r *PipelineRepository) CreatePipeline(pipeline *deals_models.SalesPipeline) error {
	return storage.GetDb().Create(pipeline).Error
}

func (r *PipelineRepository) GetPipelines(
	accountID uuid.UUID,
) ([]deals_models.SalesPipeline, error) {
	var pipelines []deals_models.SalesPipeline

	err := storage.GetDb().
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&pipelines).Error

	return pipelines, err
}

// GetDefaultPipeline returns nil without an error when the account has not
// marked a pipeline as default.
func (r *PipelineRepository) GetDefaultPipeline(
	accountID uuid.UUID,
) (*deals_models.SalesPipeline, error) {
	var pipeline deals_models.SalesPipeline

	err := storage.GetDb().
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("account_id = ? AND is_default = true", accountID).
		First(&pipeline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &pipeline, nil
}

// GetPipelineByID returns nil without an error when no pipeline exists.
func (r *PipelineRepository) GetPipelineByID(
	pipelineID uuid.UUID,
) (*deals_models.SalesPipeline, error) {
	var pipeline deals_models.SalesPipeline

	err := storage.GetDb().
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("id = ?", pipelineID).
		First(&pipeline).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &pipeline, nil
}

// GetStageByID returns nil without an error when no stage exists.
func (r *PipelineRepository) GetStageByID(
	stageID uuid.UUID,
) (*deals_models.PipelineStage, error) {
	var stage deals_models.PipelineStage

	err := storage.GetDb().Where("id = ?", stageID).First(&stage).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &stage, nil
}
