package accounts_repositories

import (
	"errors"
	"time"

	accounts_dto "clientbase-backend/internal/features/accounts/dto"
	accounts_enums "clientbase-backend/internal/features/accounts/enums"
	accounts_models "clientbase-backend/internal/features/accounts/models"
	"clientbase-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(
	membership *accounts_models.Membership,
) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(membership).Error
}

// GetMembership returns nil without an error when the user is not a member.
func (r *MembershipRepository) GetMembership(
	userID, accountID uuid.UUID,
) (*accounts_models.Membership, error) {
	var membership accounts_models.Membership

	err := storage.GetDb().
		Where("user_id = ? AND account_id = ?", userID, accountID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

// GetUserAccounts lists the team accounts the user belongs to, for the
// account switcher.
func (r *MembershipRepository) GetUserAccounts(
	userID uuid.UUID,
) ([]accounts_dto.AccountSummaryDTO, error) {
	accounts := make([]accounts_dto.AccountSummaryDTO, 0)

	err := storage.GetDb().
		Table("accounts a").
		Select("a.id, a.name, a.slug, a.picture_url, am.account_role as role").
		Joins("JOIN accounts_memberships am ON a.id = am.account_id").
		Where("am.user_id = ? AND a.is_personal_account = false", userID).
		Order("a.name ASC").
		Scan(&accounts).Error

	return accounts, err
}

// GetUserAccountIDs returns every account id the user is a member of,
// personal included.
func (r *MembershipRepository) GetUserAccountIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)

	err := storage.GetDb().
		Model(&accounts_models.Membership{}).
		Where("user_id = ?", userID).
		Pluck("account_id", &ids).Error

	return ids, err
}

// GetPermissionsForUser resolves the caller's permission list within an
// account through the membership role. No membership means an empty list,
// never an implicit grant.
func (r *MembershipRepository) GetPermissionsForUser(
	userID, accountID uuid.UUID,
) ([]accounts_enums.Permission, int, error) {
	membership, err := r.GetMembership(userID, accountID)
	if err != nil {
		return nil, 0, err
	}

	if membership == nil {
		return []accounts_enums.Permission{}, 0, nil
	}

	var role accounts_models.Role
	err = storage.GetDb().Where("name = ?", membership.Role).First(&role).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}

	permissions := make([]accounts_enums.Permission, 0)
	err = storage.GetDb().
		Model(&accounts_models.RolePermission{}).
		Where("role = ?", membership.Role).
		Pluck("permission", &permissions).Error
	if err != nil {
		return nil, 0, err
	}

	return permissions, role.HierarchyLevel, nil
}

func (r *MembershipRepository) GetAccountMembers(
	accountID uuid.UUID,
) ([]accounts_dto.AccountMemberResponseDTO, error) {
	members := make([]accounts_dto.AccountMemberResponseDTO, 0)

	err := storage.GetDb().
		Table("accounts_memberships am").
		Select(`am.user_id, am.account_id, am.account_role as role,
			COALESCE(r.hierarchy_level, 0) as role_hierarchy_level,
			a.primary_owner_user_id, u.name, u.email, u.picture_url,
			am.created_at, am.updated_at`).
		Joins("JOIN users u ON am.user_id = u.id").
		Joins("JOIN accounts a ON am.account_id = a.id").
		Joins("LEFT JOIN roles r ON am.account_role = r.name").
		Where("am.account_id = ?", accountID).
		Order("am.created_at ASC").
		Scan(&members).Error

	return members, err
}

func (r *MembershipRepository) UpdateMemberRole(
	userID, accountID uuid.UUID,
	role accounts_enums.AccountRole,
) error {
	return storage.GetDb().
		Model(&accounts_models.Membership{}).
		Where("user_id = ? AND account_id = ?", userID, accountID).
		Updates(map[string]any{
			"account_role": role,
			"updated_at":   time.Now().UTC(),
		}).Error
}

func (r *MembershipRepository) RemoveMember(userID, accountID uuid.UUID) error {
	return storage.GetDb().
		Where("user_id = ? AND account_id = ?", userID, accountID).
		Delete(&accounts_models.Membership{}).Error
}
