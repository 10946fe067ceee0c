package workspaces

import (
	"sync"
	"time"

	"clientbase-backend/internal/features/policies"
	"clientbase-backend/internal/util/logger"

	accounts_dto "clientbase-backend/internal/features/accounts/dto"
	accounts_enums "clientbase-backend/internal/features/accounts/enums"
	accounts_models "clientbase-backend/internal/features/accounts/models"
	users_models "clientbase-backend/internal/features/users/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userWorkspaceContextKey = "userWorkspace"

// IdentitySource provides the user profile lookup.
type IdentitySource interface {
	GetUserByID(id uuid.UUID) (*users_models.User, error)
}

// AccountSource provides account record lookups.
type AccountSource interface {
	GetAccountByID(id uuid.UUID) (*accounts_models.Account, error)
	GetAccountBySlug(slug string) (*accounts_models.Account, error)
}

// MembershipSource provides membership and permission lookups.
type MembershipSource interface {
	GetUserAccounts(userID uuid.UUID) ([]accounts_dto.AccountSummaryDTO, error)
	GetMembership(userID uuid.UUID, accountID uuid.UUID) (*accounts_models.Membership, error)
	GetPermissionsForUser(userID uuid.UUID, accountID uuid.UUID) ([]accounts_enums.Permission, int, error)
}

type WorkspaceService struct {
	identitySource     IdentitySource
	accountSource      AccountSource
	membershipSource   MembershipSource
	creationEvaluator  *policies.Evaluator
	teamAccountsEnabled bool
}

func NewWorkspaceService(
	identitySource IdentitySource,
	accountSource AccountSource,
	membershipSource MembershipSource,
	creationEvaluator *policies.Evaluator,
	teamAccountsEnabled bool,
) *WorkspaceService {
	return &WorkspaceService{
		identitySource:     identitySource,
		accountSource:      accountSource,
		membershipSource:   membershipSource,
		creationEvaluator:  creationEvaluator,
		teamAccountsEnabled: teamAccountsEnabled,
	}
}

// LoadUserWorkspace assembles the signed-in user's workspace payload. The
// result is memoized on the request context, so repeated calls within one
// request return the same snapshot. Identity and workspace lookups are
// fatal; the membership list degrades to empty so one broken join cannot
// take the whole page down.
func (s *WorkspaceService) LoadUserWorkspace(
	ctx *gin.Context,
	user *users_models.User,
) (*UserWorkspace, error) {
	if cached, ok := ctx.Get(userWorkspaceContextKey); ok {
		return cached.(*UserWorkspace), nil
	}

	var (
		wg sync.WaitGroup

		profile    *users_models.User
		profileErr error

		personalAccount *accounts_models.Account
		accountErr      error

		memberships    []accounts_dto.AccountSummaryDTO
		membershipsErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		profile, profileErr = s.identitySource.GetUserByID(user.ID)
	}()

	go func() {
		defer wg.Done()
		personalAccount, accountErr = s.accountSource.GetAccountByID(user.ID)
	}()

	if s.teamAccountsEnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			memberships, membershipsErr = s.membershipSource.GetUserAccounts(user.ID)
		}()
	}

	wg.Wait()

	if profileErr != nil || profile == nil {
		logger.GetLogger().Error("failed to load user profile", "userID", user.ID, "error", profileErr)
		return nil, ErrIdentityLoadFailed
	}

	if accountErr != nil || personalAccount == nil {
		logger.GetLogger().Error("failed to load personal account", "userID", user.ID, "error", accountErr)
		return nil, ErrWorkspaceLoadFailed
	}

	if membershipsErr != nil {
		logger.GetLogger().Error("failed to load account memberships", "userID", user.ID, "error", membershipsErr)
		memberships = []accounts_dto.AccountSummaryDTO{}
	}

	if memberships == nil {
		memberships = []accounts_dto.AccountSummaryDTO{}
	}

	workspace := &UserWorkspace{
		User: &UserProfile{
			ID:         profile.ID,
			Email:      profile.Email,
			Name:       profile.Name,
			PictureURL: profile.PictureURL,
		},
		Workspace: &AccountWorkspace{
			AccountID:          personalAccount.ID,
			AccountName:        personalAccount.Name,
			Slug:               personalAccount.Slug,
			IsPersonalAccount:  personalAccount.IsPersonalAccount,
			PrimaryOwnerUserID: personalAccount.PrimaryOwnerUserID,
			UserID:             user.ID,
			Permissions:        []accounts_enums.Permission{},
		},
		Accounts:             memberships,
		CanCreateTeamAccount: s.canCreateTeamAccount(user.ID),
	}

	ctx.Set(userWorkspaceContextKey, workspace)

	return workspace, nil
}

// LoadTeamWorkspace resolves a team workspace by slug for the given user.
// A missing slug and a tenant the user does not belong to produce the same
// ErrWorkspaceNotFound, so slugs cannot be probed for existence.
func (s *WorkspaceService) LoadTeamWorkspace(
	user *users_models.User,
	slug string,
) (*AccountWorkspace, error) {
	account, err := s.accountSource.GetAccountBySlug(slug)
	if err != nil {
		logger.GetLogger().Error("failed to load team account", "slug", slug, "error", err)
		return nil, ErrWorkspaceLoadFailed
	}

	if account == nil {
		return nil, ErrWorkspaceNotFound
	}

	membership, err := s.membershipSource.GetMembership(user.ID, account.ID)
	if err != nil {
		logger.GetLogger().Error("failed to check membership", "slug", slug, "userID", user.ID, "error", err)
		return nil, ErrWorkspaceLoadFailed
	}

	if membership == nil {
		return nil, ErrWorkspaceNotFound
	}

	permissions, hierarchyLevel, err := s.membershipSource.GetPermissionsForUser(user.ID, account.ID)
	if err != nil {
		logger.GetLogger().Error("failed to load permissions", "slug", slug, "userID", user.ID, "error", err)
		return nil, ErrWorkspaceLoadFailed
	}

	role := membership.Role

	return &AccountWorkspace{
		AccountID:          account.ID,
		AccountName:        account.Name,
		Slug:               account.Slug,
		IsPersonalAccount:  account.IsPersonalAccount,
		PrimaryOwnerUserID: account.PrimaryOwnerUserID,
		UserID:             user.ID,
		Role:               &role,
		RoleHierarchyLevel: hierarchyLevel,
		Permissions:        permissions,
	}, nil
}

// ResolveWorkspace resolves either the personal workspace (empty slug) or a
// team workspace. CRM handlers use this as their single entry point for
// tenant resolution.
func (s *WorkspaceService) ResolveWorkspace(
	ctx *gin.Context,
	user *users_models.User,
	slug string,
) (*AccountWorkspace, error) {
	if slug == "" {
		userWorkspace, err := s.LoadUserWorkspace(ctx, user)
		if err != nil {
			return nil, err
		}

		return userWorkspace.Workspace, nil
	}

	return s.LoadTeamWorkspace(user, slug)
}

func (s *WorkspaceService) canCreateTeamAccount(userID uuid.UUID) policies.Decision {
	if !s.teamAccountsEnabled {
		return policies.Decision{
			Allowed: false,
			Reasons: []string{"team accounts are disabled"},
		}
	}

	return s.creationEvaluator.Evaluate(policies.Context{
		Timestamp: time.Now().UTC(),
		UserID:    userID,
	}, policies.StagePreliminary)
}
