package workspaces

import (
	"errors"

	accounts_dto "clientbase-backend/internal/features/accounts/dto"
	accounts_enums "clientbase-backend/internal/features/accounts/enums"
	"clientbase-backend/internal/features/policies"

	"github.com/google/uuid"
)

var (
	// ErrIdentityLoadFailed means the signed-in user's profile could not be
	// loaded. Nothing downstream can work without it.
	ErrIdentityLoadFailed = errors.New("failed to load user identity")

	// ErrWorkspaceLoadFailed means the workspace record itself could not be
	// loaded. Unlike membership lists this is not degradable.
	ErrWorkspaceLoadFailed = errors.New("failed to load workspace")

	// ErrWorkspaceNotFound covers both a missing slug and a tenant the user
	// does not belong to. Callers must not be able to tell the two apart.
	ErrWorkspaceNotFound = errors.New("workspace not found")
)

// AccountWorkspace is the per-request permission snapshot for one account.
// It is computed once per request and never refreshed mid-request.
type AccountWorkspace struct {
	AccountID          uuid.UUID                   `json:"accountId"`
	AccountName        string                      `json:"accountName"`
	Slug               *string                     `json:"slug"`
	IsPersonalAccount  bool                        `json:"isPersonalAccount"`
	PrimaryOwnerUserID uuid.UUID                   `json:"primaryOwnerUserId"`
	UserID             uuid.UUID                   `json:"userId"`
	Role               *accounts_enums.AccountRole `json:"role"`
	RoleHierarchyLevel int                         `json:"roleHierarchyLevel"`
	Permissions        []accounts_enums.Permission `json:"permissions"`
}

// Can reports whether the snapshot holder may perform the given action.
// A personal account is identified by its id matching the user id, and its
// owner holds every permission implicitly; there is no role row to consult.
func (w *AccountWorkspace) Can(permission accounts_enums.Permission) bool {
	if w.IsPersonalAccount && w.AccountID == w.UserID {
		return true
	}

	for _, p := range w.Permissions {
		if p == permission {
			return true
		}
	}

	return false
}

// IsPrimaryOwner compares ids, not roles. Several owners can exist in a team
// account but only one of them is the primary owner.
func (w *AccountWorkspace) IsPrimaryOwner() bool {
	return w.PrimaryOwnerUserID == w.UserID
}

// UserProfile is the identity slice of the workspace payload.
type UserProfile struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	PictureURL *string   `json:"pictureUrl"`
}

// UserWorkspace is the aggregate a signed-in user sees on entry: their
// identity, their personal workspace and the team accounts they belong to.
// CanCreateTeamAccount carries the denial reasons so the frontend can
// explain a disabled "new team" button rather than just hide it.
type UserWorkspace struct {
	User                 *UserProfile                     `json:"user"`
	Workspace            *AccountWorkspace                `json:"workspace"`
	Accounts             []accounts_dto.AccountSummaryDTO `json:"accounts"`
	CanCreateTeamAccount policies.Decision                `json:"canCreateTeamAccount"`
}
