package invitations

import (
	"fmt"
	"net/http"
	"testing"

	accounts_enums "clientbase-backend/internal/features/accounts/enums"
	accounts_models "clientbase-backend/internal/features/accounts/models"
	accounts_repositories "clientbase-backend/internal/features/accounts/repositories"
	users_testing "clientbase-backend/internal/features/users/testing"
	workspaces_testing "clientbase-backend/internal/features/workspaces/testing"
	test_utils "clientbase-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateInvitation_PersonalWorkspace_Forbidden(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(GetInvitationController())
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invitations",
		"Bearer "+user.Token,
		CreateInvitationRequest{
			Email: "invitee@example.com",
			Role:  accounts_enums.AccountRoleMember,
		},
		http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "personal accounts")
}

// Inviting is gated by primary-owner id equality; an ordinary member is
// rejected no matter what role or permissions they hold.
func Test_CreateInvitation_NonPrimaryOwnerMember_Forbidden(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(GetInvitationController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	account := workspaces_testing.CreateTestTeamAccount("Invite Team", owner)

	err := accounts_repositories.GetMembershipRepository().CreateMembership(
		&accounts_models.Membership{
			UserID:    member.UserID,
			AccountID: account.ID,
			Role:      accounts_enums.AccountRoleAdmin,
		},
	)
	require.NoError(t, err)

	resp := test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s/invitations", *account.Slug),
		"Bearer "+member.Token,
		CreateInvitationRequest{
			Email: "invitee@example.com",
			Role:  accounts_enums.AccountRoleMember,
		},
		http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "primary owner")
}

func Test_CreateInvitation_OwnerSucceedsAndLists(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(GetInvitationController())
	owner := users_testing.CreateTestUser()
	account := workspaces_testing.CreateTestTeamAccount("Invite Team", owner)

	var created Invitation
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s/invitations", *account.Slug),
		"Bearer "+owner.Token,
		CreateInvitationRequest{
			Email: "invitee@example.com",
			Role:  accounts_enums.AccountRoleMember,
		},
		http.StatusCreated,
		&created,
	)

	assert.Equal(t, account.ID, created.AccountID)
	assert.Equal(t, InvitationStatusPending, created.Status)

	var response GetInvitationsResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s/invitations", *account.Slug),
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Invitations, 1)
	assert.Equal(t, "invitee@example.com", response.Invitations[0].Email)
}

func Test_AcceptInvitation_GrantsMembership(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(GetInvitationController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()
	account := workspaces_testing.CreateTestTeamAccount("Join Team", owner)

	var created Invitation
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s/invitations", *account.Slug),
		"Bearer "+owner.Token,
		CreateInvitationRequest{
			Email: invitee.Email,
			Role:  accounts_enums.AccountRoleMember,
		},
		http.StatusCreated,
		&created,
	)

	test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/invitations/%s/accept", created.ID),
		"Bearer "+invitee.Token,
		nil,
		http.StatusNoContent,
	)

	membership, err := accounts_repositories.GetMembershipRepository().
		GetMembership(invitee.UserID, account.ID)
	require.NoError(t, err)
	require.NotNil(t, membership)
	assert.Equal(t, accounts_enums.AccountRoleMember, membership.Role)
}

func Test_AcceptInvitation_WrongEmail_Gone(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(GetInvitationController())
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()
	account := workspaces_testing.CreateTestTeamAccount("Closed Team", owner)

	var created Invitation
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s/invitations", *account.Slug),
		"Bearer "+owner.Token,
		CreateInvitationRequest{
			Email: "someone-else@example.com",
			Role:  accounts_enums.AccountRoleMember,
		},
		http.StatusCreated,
		&created,
	)

	test_utils.MakePostRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/invitations/%s/accept", created.ID),
		"Bearer "+stranger.Token,
		nil,
		http.StatusGone,
	)
}
