package invitations

import (
	"errors"
	"time"

	"clientbase-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationRepository struct{}

func (r *InvitationRepository) CreateInvitation(invitation *Invitation) error {
	return storage.GetDb().Create(invitation).Error
}

// GetInvitationByID returns nil without an error when no invitation exists.
func (r *InvitationRepository) GetInvitationByID(
	invitationID uuid.UUID,
) (*Invitation, error) {
	var invitation Invitation

	err := storage.GetDb().Where("id = ?", invitationID).First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invitation, nil
}

func (r *InvitationRepository) GetAccountInvitations(
	accountID uuid.UUID,
) ([]Invitation, error) {
	var invitations []Invitation

	err := storage.GetDb().
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&invitations).Error

	return invitations, err
}

func (r *InvitationRepository) CountPendingInvitations(
	accountID uuid.UUID,
) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&Invitation{}).
		Where("account_id = ? AND status = ? AND expires_at > ?",
			accountID, InvitationStatusPending, time.Now().UTC()).
		Count(&count).Error

	return count, err
}

func (r *InvitationRepository) UpdateInvitation(invitation *Invitation) error {
	return storage.GetDb().Save(invitation).Error
}

// DeleteExpiredInvitations removes pending rows past their expiry and
// reports how many went away.
func (r *InvitationRepository) DeleteExpiredInvitations(now time.Time) (int64, error) {
	result := storage.GetDb().
		Where("status = ? AND expires_at <= ?", InvitationStatusPending, now).
		Delete(&Invitation{})

	return result.RowsAffected, result.Error
}
