package workspaces

import (
	"errors"
	"net/http/httptest"
	"testing"

	"clientbase-backend/internal/features/policies"

	accounts_dto "clientbase-backend/internal/features/accounts/dto"
	accounts_enums "clientbase-backend/internal/features/accounts/enums"
	accounts_models "clientbase-backend/internal/features/accounts/models"
	users_models "clientbase-backend/internal/features/users/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeIdentitySource struct {
	user *users_models.User
	err  error
}

func (f *fakeIdentitySource) GetUserByID(uuid.UUID) (*users_models.User, error) {
	return f.user, f.err
}

type fakeAccountSource struct {
	byID   map[uuid.UUID]*accounts_models.Account
	bySlug map[string]*accounts_models.Account
	err    error
}

func (f *fakeAccountSource) GetAccountByID(id uuid.UUID) (*accounts_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeAccountSource) GetAccountBySlug(slug string) (*accounts_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bySlug[slug], nil
}

type fakeMembershipSource struct {
	accounts       []accounts_dto.AccountSummaryDTO
	accountsErr    error
	membership     *accounts_models.Membership
	permissions    []accounts_enums.Permission
	hierarchyLevel int
	calls          int
}

func (f *fakeMembershipSource) GetUserAccounts(uuid.UUID) ([]accounts_dto.AccountSummaryDTO, error) {
	f.calls++
	return f.accounts, f.accountsErr
}

func (f *fakeMembershipSource) GetMembership(uuid.UUID, uuid.UUID) (*accounts_models.Membership, error) {
	return f.membership, nil
}

func (f *fakeMembershipSource) GetPermissionsForUser(uuid.UUID, uuid.UUID) ([]accounts_enums.Permission, int, error) {
	return f.permissions, f.hierarchyLevel, nil
}

func newTestUser() *users_models.User {
	return &users_models.User{
		ID:    uuid.New(),
		Email: "jordan@example.com",
		Name:  "Jordan",
	}
}

func personalAccountFor(user *users_models.User) *accounts_models.Account {
	return &accounts_models.Account{
		ID:                 user.ID,
		Name:               user.Name,
		IsPersonalAccount:  true,
		PrimaryOwnerUserID: user.ID,
	}
}

func newTestContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	return ctx
}

func Test_LoadUserWorkspace_MemoizesOnRequestContext(t *testing.T) {
	user := newTestUser()
	memberships := &fakeMembershipSource{}

	service := NewWorkspaceService(
		&fakeIdentitySource{user: user},
		&fakeAccountSource{byID: map[uuid.UUID]*accounts_models.Account{user.ID: personalAccountFor(user)}},
		memberships,
		policies.NewEvaluator(),
		true,
	)

	ctx := newTestContext()

	first, err := service.LoadUserWorkspace(ctx, user)
	assert.NoError(t, err)

	second, err := service.LoadUserWorkspace(ctx, user)
	assert.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, memberships.calls)
}

func Test_LoadUserWorkspace_MembershipFailureDegradesToEmpty(t *testing.T) {
	user := newTestUser()

	service := NewWorkspaceService(
		&fakeIdentitySource{user: user},
		&fakeAccountSource{byID: map[uuid.UUID]*accounts_models.Account{user.ID: personalAccountFor(user)}},
		&fakeMembershipSource{accountsErr: errors.New("join blew up")},
		policies.NewEvaluator(),
		true,
	)

	workspace, err := service.LoadUserWorkspace(newTestContext(), user)
	assert.NoError(t, err)
	assert.NotNil(t, workspace.Workspace)
	assert.Empty(t, workspace.Accounts)
	assert.NotNil(t, workspace.Accounts)
}

func Test_LoadUserWorkspace_IdentityFailureIsFatal(t *testing.T) {
	user := newTestUser()

	service := NewWorkspaceService(
		&fakeIdentitySource{err: errors.New("identity store down")},
		&fakeAccountSource{byID: map[uuid.UUID]*accounts_models.Account{user.ID: personalAccountFor(user)}},
		&fakeMembershipSource{},
		policies.NewEvaluator(),
		true,
	)

	_, err := service.LoadUserWorkspace(newTestContext(), user)
	assert.ErrorIs(t, err, ErrIdentityLoadFailed)
}

func Test_LoadUserWorkspace_WorkspaceFailureIsFatal(t *testing.T) {
	user := newTestUser()

	service := NewWorkspaceService(
		&fakeIdentitySource{user: user},
		&fakeAccountSource{err: errors.New("accounts store down")},
		&fakeMembershipSource{},
		policies.NewEvaluator(),
		true,
	)

	_, err := service.LoadUserWorkspace(newTestContext(), user)
	assert.ErrorIs(t, err, ErrWorkspaceLoadFailed)
}

func Test_LoadUserWorkspace_TeamAccountsDisabledSkipsMembershipLookup(t *testing.T) {
	user := newTestUser()
	memberships := &fakeMembershipSource{
		accounts: []accounts_dto.AccountSummaryDTO{{Name: "should not appear"}},
	}

	service := NewWorkspaceService(
		&fakeIdentitySource{user: user},
		&fakeAccountSource{byID: map[uuid.UUID]*accounts_models.Account{user.ID: personalAccountFor(user)}},
		memberships,
		policies.NewEvaluator(),
		false,
	)

	workspace, err := service.LoadUserWorkspace(newTestContext(), user)
	assert.NoError(t, err)
	assert.Empty(t, workspace.Accounts)
	assert.Equal(t, 0, memberships.calls)
	assert.False(t, workspace.CanCreateTeamAccount.Allowed)
	assert.NotEmpty(t, workspace.CanCreateTeamAccount.Reasons)
}

type pausedCreationRule struct{}

func (pausedCreationRule) Name() string { return "paused-creation" }

func (pausedCreationRule) Stages() []policies.Stage {
	return []policies.Stage{policies.StagePreliminary}
}

func (pausedCreationRule) Evaluate(policies.Context) string {
	return "new team accounts are paused"
}

func Test_LoadUserWorkspace_CreationDenialCarriesReasons(t *testing.T) {
	user := newTestUser()

	service := NewWorkspaceService(
		&fakeIdentitySource{user: user},
		&fakeAccountSource{byID: map[uuid.UUID]*accounts_models.Account{user.ID: personalAccountFor(user)}},
		&fakeMembershipSource{},
		policies.NewEvaluator(pausedCreationRule{}),
		true,
	)

	workspace, err := service.LoadUserWorkspace(newTestContext(), user)
	assert.NoError(t, err)
	assert.False(t, workspace.CanCreateTeamAccount.Allowed)
	assert.Equal(t, []string{"new team accounts are paused"}, workspace.CanCreateTeamAccount.Reasons)
}

func Test_LoadTeamWorkspace_UnknownSlugAndForeignTenantLookAlike(t *testing.T) {
	user := newTestUser()
	foreignAccount := &accounts_models.Account{
		ID:                 uuid.New(),
		Name:               "Someone Else's Team",
		PrimaryOwnerUserID: uuid.New(),
	}

	service := NewWorkspaceService(
		&fakeIdentitySource{user: user},
		&fakeAccountSource{bySlug: map[string]*accounts_models.Account{"their-team": foreignAccount}},
		&fakeMembershipSource{membership: nil},
		policies.NewEvaluator(),
		true,
	)

	_, unknownErr := service.LoadTeamWorkspace(user, "no-such-team")
	_, foreignErr := service.LoadTeamWorkspace(user, "their-team")

	assert.ErrorIs(t, unknownErr, ErrWorkspaceNotFound)
	assert.ErrorIs(t, foreignErr, ErrWorkspaceNotFound)
}

func Test_LoadTeamWorkspace_ReturnsRoleAndPermissions(t *testing.T) {
	user := newTestUser()
	slug := "acme"
	account := &accounts_models.Account{
		ID:                 uuid.New(),
		Name:               "Acme",
		Slug:               &slug,
		PrimaryOwnerUserID: uuid.New(),
	}

	service := NewWorkspaceService(
		&fakeIdentitySource{user: user},
		&fakeAccountSource{bySlug: map[string]*accounts_models.Account{slug: account}},
		&fakeMembershipSource{
			membership:     &accounts_models.Membership{UserID: user.ID, AccountID: account.ID, Role: accounts_enums.AccountRoleMember},
			permissions:    []accounts_enums.Permission{accounts_enums.PermissionClientsCreate},
			hierarchyLevel: 2,
		},
		policies.NewEvaluator(),
		true,
	)

	workspace, err := service.LoadTeamWorkspace(user, slug)
	assert.NoError(t, err)
	assert.Equal(t, account.ID, workspace.AccountID)
	assert.Equal(t, accounts_enums.AccountRoleMember, *workspace.Role)
	assert.Equal(t, 2, workspace.RoleHierarchyLevel)
	assert.True(t, workspace.Can(accounts_enums.PermissionClientsCreate))
	assert.False(t, workspace.Can(accounts_enums.PermissionClientsDelete))
	assert.False(t, workspace.IsPrimaryOwner())
}

func Test_AccountWorkspace_PersonalAccountGrantsEverything(t *testing.T) {
	userID := uuid.New()
	workspace := &AccountWorkspace{
		AccountID:          userID,
		IsPersonalAccount:  true,
		PrimaryOwnerUserID: userID,
		UserID:             userID,
	}

	assert.True(t, workspace.Can(accounts_enums.PermissionClientsDelete))
	assert.True(t, workspace.Can(accounts_enums.PermissionSettingsManage))
	assert.True(t, workspace.IsPrimaryOwner())
}

func Test_AccountWorkspace_TeamAccountUsesStoredListOnly(t *testing.T) {
	workspace := &AccountWorkspace{
		AccountID:         uuid.New(),
		IsPersonalAccount: false,
		UserID:            uuid.New(),
		Permissions: []accounts_enums.Permission{
			accounts_enums.PermissionClientsCreate,
			accounts_enums.PermissionClientsUpdate,
		},
	}

	assert.True(t, workspace.Can(accounts_enums.PermissionClientsCreate))
	assert.False(t, workspace.Can(accounts_enums.PermissionClientsDelete))

	workspace.Permissions = nil
	assert.False(t, workspace.Can(accounts_enums.PermissionClientsCreate))
}

func Test_AccountWorkspace_ImplicitGrantRequiresMatchingIDs(t *testing.T) {
	workspace := &AccountWorkspace{
		AccountID:         uuid.New(),
		IsPersonalAccount: true,
		UserID:            uuid.New(),
	}

	assert.False(t, workspace.Can(accounts_enums.PermissionClientsCreate))
}
