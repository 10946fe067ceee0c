package accounts_repositories

import (
	"errors"
	"time"

	accounts_models "clientbase-backend/internal/features/accounts/models"
	"clientbase-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository struct{}

func (r *AccountRepository) CreateAccount(account *accounts_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(account).Error
}

func (r *AccountRepository) GetAccountByID(
	accountID uuid.UUID,
) (*accounts_models.Account, error) {
	var account accounts_models.Account

	if err := storage.GetDb().Where("id = ?", accountID).First(&account).Error; err != nil {
		return nil, err
	}

	return &account, nil
}

// GetAccountBySlug returns nil without an error when no team account has
// the given slug.
func (r *AccountRepository) GetAccountBySlug(slug string) (*accounts_models.Account, error) {
	var account accounts_models.Account

	err := storage.GetDb().
		Where("slug = ? AND is_personal_account = false", slug).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &account, nil
}

func (r *AccountRepository) GetTeamAccountsByIDs(
	accountIDs []uuid.UUID,
) ([]accounts_models.Account, error) {
	accounts := make([]accounts_models.Account, 0)

	err := storage.GetDb().
		Where("id IN ? AND is_personal_account = false", accountIDs).
		Find(&accounts).Error

	return accounts, err
}

func (r *AccountRepository) UpdateAccount(account *accounts_models.Account) error {
	account.UpdatedAt = time.Now().UTC()
	return storage.GetDb().Save(account).Error
}

func (r *AccountRepository) DeleteAccount(accountID uuid.UUID) error {
	return storage.GetDb().Delete(&accounts_models.Account{}, accountID).Error
}
