package deals_controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	clients_controllers "clientbase-backend/internal/features/clients/controllers"
	clients_dto "clientbase-backend/internal/features/clients/dto"
	clients_models "clientbase-backend/internal/features/clients/models"
	deals_dto "clientbase-backend/internal/features/deals/dto"
	deals_models "clientbase-backend/internal/features/deals/models"
	deals_repositories "clientbase-backend/internal/features/deals/repositories"
	users_dto "clientbase-backend/internal/features/users/dto"
	users_testing "clientbase-backend/internal/features/users/testing"
	workspaces_testing "clientbase-backend/internal/features/workspaces/testing"
	test_utils "clientbase-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func createTestRouter() *gin.Engine {
	return workspaces_testing.CreateTestCRMRouter(
		GetDealController(),
		clients_controllers.GetClientController(),
	)
}

func createTestPipeline(t *testing.T, accountID uuid.UUID) *deals_models.SalesPipeline {
	t.Helper()

	pipeline := &deals_models.SalesPipeline{
		ID:        uuid.New(),
		AccountID: accountID,
		Name:      "Sales",
		IsDefault: true,
		Stages: []deals_models.PipelineStage{
			{ID: uuid.New(), Name: "Qualified", SortOrder: 0, CreatedAt: time.Now().UTC()},
			{ID: uuid.New(), Name: "Won", SortOrder: 1, IsClosed: true, CreatedAt: time.Now().UTC()},
		},
		CreatedAt: time.Now().UTC(),
	}

	err := deals_repositories.GetPipelineRepository().CreatePipeline(pipeline)
	assert.NoError(t, err)

	return pipeline
}

func createTestClient(
	t *testing.T,
	router *gin.Engine,
	user *users_dto.SignInResponseDTO,
) *clients_models.Client {
	t.Helper()

	request := clients_dto.CreateClientRequestDTO{
		Name: "Board Client " + uuid.New().String()[:8],
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

	return &created
}

func Test_CreateDeal_LandsOnFirstStageOfDefaultPipeline(t *testing.T) {
	router := createTestRouter()
	user := users_testing.CreateTestUser()
	pipeline := createTestPipeline(t, user.UserID)
	client := createTestClient(t, router, user)

	request := deals_dto.CreateDealRequestDTO{
		ClientID: client.ID,
		Title:    "First deal",
	}

	var created deals_models.Deal
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/deals",
		"Bearer "+user.Token,
		request,
		http.StatusCreated,
		&created,
	)

	assert.Equal(t, user.UserID, created.AccountID)
	assert.Equal(t, pipeline.ID, created.PipelineID)
	assert.Equal(t, pipeline.Stages[0].ID, created.StageID)
}

func Test_GetDealsBoard_BucketsDealsWithClientNames(t *testing.T) {
	router := createTestRouter()
	user := users_testing.CreateTestUser()
	pipeline := createTestPipeline(t, user.UserID)
	client := createTestClient(t, router, user)

	request := deals_dto.CreateDealRequestDTO{
		ClientID: client.ID,
		Title:    "Board deal",
	}

	var created deals_models.Deal
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/deals",
		"Bearer "+user.Token,
		request,
		http.StatusCreated,
		&created,
	)

	var board deals_dto.DealsBoardResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/deals/board",
		"Bearer "+user.Token,
		http.StatusOK,
		&board,
	)

	assert.Equal(t, pipeline.ID, board.Pipeline.ID)
	assert.Len(t, board.DealsByStage, len(pipeline.Stages))

	bucket := board.DealsByStage[pipeline.Stages[0].ID.String()]
	if assert.Len(t, bucket, 1) {
		assert.Equal(t, created.ID, bucket[0].ID)
		assert.Equal(t, client.Name, bucket[0].ClientName)
	}
}

func Test_GetDealsBoard_NoPipeline_NotFound(t *testing.T) {
	router := createTestRouter()
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/deals/board",
		"Bearer "+user.Token,
		http.StatusNotFound,
	)
}

// A client id from another tenant must not leak whether it exists: the
// handler redirects to the board, same as a miss.
func Test_CreateDeal_ForeignClient_RedirectsToBoard(t *testing.T) {
	router := createTestRouter()
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()

	createTestPipeline(t, stranger.UserID)
	ownerClient := createTestClient(t, router, owner)

	request := deals_dto.CreateDealRequestDTO{
		ClientID: ownerClient.ID,
		Title:    "Poached deal",
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/deals",
		"Bearer "+stranger.Token,
		request,
		http.StatusSeeOther,
	)
}

func Test_MoveDeal_ToClosedStage_StampsCloseDate(t *testing.T) {
	router := createTestRouter()
	user := users_testing.CreateTestUser()
	pipeline := createTestPipeline(t, user.UserID)
	client := createTestClient(t, router, user)

	var created deals_models.Deal
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/deals",
		"Bearer "+user.Token,
		deals_dto.CreateDealRequestDTO{ClientID: client.ID, Title: "Closing deal"},
		http.StatusCreated,
		&created,
	)

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "PUT",
		URL:            fmt.Sprintf("/api/v1/deals/%s/stage", created.ID),
		Body:           deals_dto.MoveDealRequestDTO{StageID: pipeline.Stages[1].ID},
		AuthToken:      "Bearer " + user.Token,
		ExpectedStatus: http.StatusOK,
	})

	var moved deals_models.Deal
	assert.NoError(t, json.Unmarshal(resp.Body, &moved))

	assert.Equal(t, pipeline.Stages[1].ID, moved.StageID)
	assert.NotNil(t, moved.ActualCloseDate)
}
