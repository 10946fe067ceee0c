package accounts_controllers

import (
	"fmt"
	"net/http"
	"testing"

	accounts_dto "clientbase-backend/internal/features/accounts/dto"
	users_testing "clientbase-backend/internal/features/users/testing"
	workspaces_testing "clientbase-backend/internal/features/workspaces/testing"
	test_utils "clientbase-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateTeamAccount_OwnerGetsAccountBack(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetAccountController())
	user := users_testing.CreateTestUser()

	uniqueID := uuid.New().String()[:8]
	request := accounts_dto.CreateTeamAccountRequestDTO{
		Name: "Sales Team " + uniqueID,
		Slug: "sales-team-" + uniqueID,
	}

	var response accounts_dto.AccountSummaryDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/accounts",
		"Bearer "+user.Token,
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, request.Name, response.Name)
	assert.NotEqual(t, uuid.Nil, response.ID)
	assert.NotNil(t, response.Slug)
	assert.Equal(t, request.Slug, *response.Slug)

	var accounts []accounts_dto.AccountSummaryDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/accounts",
		"Bearer "+user.Token,
		http.StatusOK,
		&accounts,
	)

	found := false
	for _, account := range accounts {
		if account.ID == response.ID {
			found = true
		}
	}
	assert.True(t, found, "created account should be in the user's account list")
}

func Test_CreateTeamAccount_DuplicateSlug_Forbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetAccountController())
	user := users_testing.CreateTestUser()

	uniqueID := uuid.New().String()[:8]
	request := accounts_dto.CreateTeamAccountRequestDTO{
		Name: "First " + uniqueID,
		Slug: "dup-" + uniqueID,
	}

	test_utils.MakePostRequest(
		t, router, "/api/v1/accounts", "Bearer "+user.Token, request, http.StatusCreated,
	)

	request.Name = "Second " + uniqueID
	resp := test_utils.MakePostRequest(
		t, router, "/api/v1/accounts", "Bearer "+user.Token, request, http.StatusForbidden,
	)
	assert.Contains(t, string(resp.Body), "slug")
}

func Test_GetAccountMembers_OwnerSeesSelf(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetAccountController())
	user := users_testing.CreateTestUser()
	account := workspaces_testing.CreateTestTeamAccount("Members Team", user)

	var response accounts_dto.GetMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/accounts/%s/members", account.ID),
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	assert.True(t, response.CanAddMember)
	assert.Len(t, response.Members, 1)
	assert.Equal(t, user.UserID, response.Members[0].UserID)
}

func Test_GetAccountMembers_NonMember_Forbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetAccountController())
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()
	account := workspaces_testing.CreateTestTeamAccount("Private Team", owner)

	test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/accounts/%s/members", account.ID),
		"Bearer "+stranger.Token,
		http.StatusForbidden,
	)
}

func Test_Accounts_WithoutToken_Unauthorized(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetAccountController())

	test_utils.MakeGetRequest(t, router, "/api/v1/accounts", "", http.StatusUnauthorized)
}
