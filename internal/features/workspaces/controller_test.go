package workspaces_test

import (
	"net/http"
	"testing"

	users_testing "clientbase-backend/internal/features/users/testing"
	"clientbase-backend/internal/features/workspaces"
	workspaces_testing "clientbase-backend/internal/features/workspaces/testing"
	test_utils "clientbase-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetUserWorkspace_ReturnsPersonalWorkspace(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(workspaces.GetWorkspaceController())
	user := users_testing.CreateTestUser()
	account := workspaces_testing.CreateTestTeamAccount("Entry Team", user)

	var response workspaces.UserWorkspace
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspace",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	require.NotNil(t, response.User)
	require.NotNil(t, response.Workspace)
	assert.Equal(t, user.UserID, response.User.ID)
	assert.Equal(t, user.UserID, response.Workspace.AccountID)
	assert.True(t, response.Workspace.IsPersonalAccount)
	assert.True(t, response.CanCreateTeamAccount.Allowed)
	assert.Empty(t, response.CanCreateTeamAccount.Reasons)

	found := false
	for _, summary := range response.Accounts {
		if summary.ID == account.ID {
			found = true
		}
	}
	assert.True(t, found, "team account should appear in the entry aggregate")
}

func Test_GetTeamWorkspace_OwnerGetsRoleAndPermissions(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(workspaces.GetWorkspaceController())
	user := users_testing.CreateTestUser()
	account := workspaces_testing.CreateTestTeamAccount("Role Team", user)

	var response workspaces.AccountWorkspace
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+*account.Slug,
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, account.ID, response.AccountID)
	assert.False(t, response.IsPersonalAccount)
	assert.Equal(t, user.UserID, response.PrimaryOwnerUserID)
	require.NotNil(t, response.Role)
	assert.NotEmpty(t, response.Permissions)
}

func Test_GetTeamWorkspace_UnknownSlug_Redirects(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(workspaces.GetWorkspaceController())
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/workspaces/no-such-slug",
		"Bearer "+user.Token,
		http.StatusSeeOther,
	)
}

// A slug that exists but belongs to someone else must behave exactly like a
// slug that does not exist.
func Test_GetTeamWorkspace_ForeignSlug_Redirects(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(workspaces.GetWorkspaceController())
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()
	account := workspaces_testing.CreateTestTeamAccount("Secret Team", owner)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/workspaces/"+*account.Slug,
		"Bearer "+stranger.Token,
		http.StatusSeeOther,
	)
}
