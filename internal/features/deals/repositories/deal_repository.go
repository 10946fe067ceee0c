package deals_repositories

import (
	"errors"
	"time"

	deals_models "clientbase-backend/internal/features/deals/models"
	"clientbase-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DealRepository struct{}

func (r *DealRepository) CreateDeal(deal *deals_models.Deal) error {
	return storage.GetDb().Create(deal).Error
}

// GetDealByID returns nil without an error when no deal exists.
func (r *DealRepository) GetDealByID(dealID uuid.UUID) (*deals_models.Deal, error) {
	var deal deals_models.Deal

	err := storage.GetDb().Where("id = ?", dealID).First(&deal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &deal, nil
}

func (r *DealRepository) GetDealsByPipeline(
	accountID uuid.UUID,
	pipelineID uuid.UUID,
) ([]deals_models.Deal, error) {
	var deals []deals_models.Deal

	err := storage.GetDb().
		Where("account_id = ? AND pipeline_id = ?", accountID, pipelineID).
		Order("created_at DESC").
		Find(&deals).Error

	return deals, err
}

func (r *DealRepository) GetDealsByAccount(accountID uuid.UUID) ([]deals_models.Deal, error) {
	var deals []deals_models.Deal

	err := storage.GetDb().
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&deals).Error

	return deals, err
}

func (r *DealRepository) UpdateDeal(deal *deals_models.Deal) error {
	deal.UpdatedAt = time.Now().UTC()
	return storage.GetDb().Save(deal).Error
}

func (r *DealRepository) DeleteDeal(dealID uuid.UUID) error {
	return storage.GetDb().Where("id = ?", dealID).Delete(&deals_models.Deal{}).Error
}
