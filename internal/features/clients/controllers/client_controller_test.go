package clients_controllers

import (
	"fmt"
	"net/http"
	"testing"

	clients_dto "clientbase-backend/internal/features/clients/dto"
	clients_enums "clientbase-backend/internal/features/clients/enums"
	clients_models "clientbase-backend/internal/features/clients/models"
	users_testing "clientbase-backend/internal/features/users/testing"
	workspaces_testing "clientbase-backend/internal/features/workspaces/testing"
	test_utils "clientbase-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateAndGetClient_PersonalWorkspace(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(GetClientController())
	user := users_testing.CreateTestUser()

	request := clients_dto.CreateClientRequestDTO{
		Name:   "Acme Corp " + uuid.New().String()[:8],
		Status: clients_enums.ClientStatusLead,
	}

	var created clients_models.Client
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/clients",
		"Bearer "+user.Token,
		request,
		http.StatusCreated,
		&created,
	)

	assert.Equal(t, request.Name, created.Name)
	assert.Equal(t, user.UserID, created.AccountID)
	assert.Equal(t, user.UserID, created.CreatedBy)

	var fetched clients_models.Client
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/clients/%s", created.ID),
		"Bearer "+user.Token,
		http.StatusOK,
		&fetched,
	)
	assert.Equal(t, created.ID, fetched.ID)
}

func Test_CreateClient_TeamWorkspace_UsesAccountTenant(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(GetClientController())
	user := users_testing.CreateTestUser()
	account := workspaces_testing.CreateTestTeamAccount("CRM Team", user)

	request := clients_dto.CreateClientRequestDTO{
		Name:   "Team Client " + uuid.New().String()[:8],
		Status: clients_enums.ClientStatusActive,
	}

	var created clients_models.Client
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		fmt.Sprintf("/api/v1/workspaces/%s/clients", *account.Slug),
		"Bearer "+user.Token,
		request,
		http.StatusCreated,
		&created,
	)

	assert.Equal(t, account.ID, created.AccountID)
}

// A client id from another tenant must not leak whether it exists: the
// handler answers with a redirect to the client list, same as a miss.
func Test_GetClient_ForeignTenant_RedirectsToList(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(GetClientController())
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()

	request := clients_dto.CreateClientRequestDTO{
		Name: "Hidden Client " + uuid.New().String()[:8],
	}

	var created clients_models.Client
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/clients",
		"Bearer "+owner.Token,
		request,
		http.StatusCreated,
		&created,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		fmt.Sprintf("/api/v1/clients/%s", created.ID),
		"Bearer "+stranger.Token,
		http.StatusSeeOther,
	)
}

func Test_GetClients_FiltersByStatus(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(GetClientController())
	user := users_testing.CreateTestUser()

	for _, status := range []clients_enums.ClientStatus{
		clients_enums.ClientStatusLead,
		clients_enums.ClientStatusLead,
		clients_enums.ClientStatusCustomer,
	} {
		test_utils.MakePostRequest(
			t,
			router,
			"/api/v1/clients",
			"Bearer "+user.Token,
			clients_dto.CreateClientRequestDTO{
				Name:   "Client " + uuid.New().String()[:8],
				Status: status,
			},
			http.StatusCreated,
		)
	}

	var response clients_dto.GetClientsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/clients?status=lead",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, int64(2), response.Total)
	for _, client := range response.Clients {
		assert.Equal(t, clients_enums.ClientStatusLead, client.Status)
	}
}

func Test_GetClientStats_CountsByStatusAndSource(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(GetClientController())
	user := users_testing.CreateTestUser()

	referral := "referral"
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/clients",
		"Bearer "+user.Token,
		clients_dto.CreateClientRequestDTO{
			Name:   "Stats Client " + uuid.New().String()[:8],
			Status: clients_enums.ClientStatusActive,
			Source: &referral,
		},
		http.StatusCreated,
	)

	var stats clients_dto.ClientStatsDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/clients/stats",
		"Bearer "+user.Token,
		http.StatusOK,
		&stats,
	)

	assert.Equal(t, 1, stats.TotalClients)
	assert.Equal(t, 1, stats.StatusCounts["active"])
	assert.Equal(t, 1, stats.SourceCounts["referral"])
	assert.NotContains(t, stats.StatusCounts, "inactive")
}
