package clients_repositories

import (
	"errors"
	"time"

	clients_dto "clientbase-backend/internal/features/clients/dto"
	clients_models "clientbase-backend/internal/features/clients/models"
	"clientbase-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientRepository struct{}

func (r *ClientRepository) CreateClient(client *clients_models.Client) error {
	return storage.GetDb().Create(client).Error
}

// GetClientByID returns nil without an error when no client exists.
func (r *ClientRepository) GetClientByID(clientID uuid.UUID) (*clients_models.Client, error) {
	var client clients_models.Client

	err := storage.GetDb().Where("id = ?", clientID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &client, nil
}

func (r *ClientRepository) GetClients(
	accountID uuid.UUID,
	request *clients_dto.GetClientsRequestDTO,
) ([]clients_models.Client, int64, error) {
	query := storage.GetDb().
		Model(&clients_models.Client{}).
		Where("account_id = ?", accountID)

	if request.Status != nil {
		query = query.Where("status = ?", *request.Status)
	}

	if request.Search != "" {
		pattern := "%" + request.Search + "%"
		query = query.Where(
			"name ILIKE ? OR email ILIKE ? OR company ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []clients_models.Client
	err := query.
		Order("created_at DESC").
		Limit(request.Limit).
		Offset((request.Page - 1) * request.Limit).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

func (r *ClientRepository) GetClientsByAccountIDs(
	accountIDs []uuid.UUID,
) ([]clients_models.Client, error) {
	var clients []clients_models.Client

	err := storage.GetDb().
		Where("account_id IN ?", accountIDs).
		Order("created_at DESC").
		Find(&clients).Error

	return clients, err
}

// StatusSourceRow is the minimal projection the stats fold works on.
type StatusSourceRow struct {
	Status string
	Source *string
}

func (r *ClientRepository) GetStatusSourceRows(
	accountID uuid.UUID,
) ([]StatusSourceRow, error) {
	var rows []StatusSourceRow

	err := storage.GetDb().
		Model(&clients_models.Client{}).
		Select("status", "source").
		Where("account_id = ?", accountID).
		Find(&rows).Error

	return rows, err
}

func (r *ClientRepository) GetRecentClients(
	accountID uuid.UUID,
	limit int,
) ([]clients_models.Client, error) {
	var clients []clients_models.Client

	err := storage.GetDb().
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&clients).Error

	return clients, err
}

func (r *ClientRepository) UpdateClient(client *clients_models.Client) error {
	client.UpdatedAt = time.Now().UTC()
	return storage.GetDb().Save(client).Error
}

func (r *ClientRepository) DeleteClient(clientID uuid.UUID) error {
	return storage.GetDb().Where("id = ?", clientID).Delete(&clients_models.Client{}).Error
}
