package tasks_controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	clients_controllers "clientbase-backend/internal/features/clients/controllers"
	clients_dto "clientbase-backend/internal/features/clients/dto"
	clients_models "clientbase-backend/internal/features/clients/models"
	tasks_dto "clientbase-backend/internal/features/tasks/dto"
	tasks_models "clientbase-backend/internal/features/tasks/models"
	users_testing "clientbase-backend/internal/features/users/testing"
	workspaces_testing "clientbase-backend/internal/features/workspaces/testing"
	test_utils "clientbase-backend/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateTask_WithoutParent_BadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(GetTaskController())
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/tasks",
		"Bearer "+user.Token,
		tasks_dto.CreateTaskRequestDTO{Title: "Orphan task"},
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "client or a deal")
}

func Test_CreateTask_InheritsAccountFromClient(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(
		GetTaskController(),
		clients_controllers.GetClientController(),
	)
	user := users_testing.CreateTestUser()

	var client clients_models.Client
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/clients",
		"Bearer "+user.Token,
		clients_dto.CreateClientRequestDTO{Name: "Task Client " + uuid.New().String()[:8]},
		http.StatusCreated,
		&client,
	)

	var task tasks_models.Task
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks",
		"Bearer "+user.Token,
		tasks_dto.CreateTaskRequestDTO{ClientID: &client.ID, Title: "Follow up"},
		http.StatusCreated,
		&task,
	)

	assert.Equal(t, client.AccountID, task.AccountID)
	require.NotNil(t, task.ClientID)
	assert.Equal(t, client.ID, *task.ClientID)

	var response tasks_dto.GetTasksResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks?pendingOnly=true",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Tasks, 1)
	assert.Equal(t, task.ID, response.Tasks[0].ID)
}

func Test_UpdateTask_CompletionToggleStampsAndClears(t *testing.T) {
	router := workspaces_testing.CreateTestCRMRouter(
		GetTaskController(),
		clients_controllers.GetClientController(),
	)
	user := users_testing.CreateTestUser()

	var client clients_models.Client
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/clients",
		"Bearer "+user.Token,
		clients_dto.CreateClientRequestDTO{Name: "Toggle Client " + uuid.New().String()[:8]},
		http.StatusCreated,
		&client,
	)

	var task tasks_models.Task
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/tasks",
		"Bearer "+user.Token,
		tasks_dto.CreateTaskRequestDTO{ClientID: &client.ID, Title: "Call back"},
		http.StatusCreated,
		&task,
	)

	completed := true
	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "PUT",
		URL:            "/api/v1/tasks/" + task.ID.String(),
		Body:           tasks_dto.UpdateTaskRequestDTO{Completed: &completed},
		AuthToken:      "Bearer " + user.Token,
		ExpectedStatus: http.StatusOK,
	})

	var updated tasks_models.Task
	require.NoError(t, json.Unmarshal(resp.Body, &updated))
	assert.NotNil(t, updated.CompletedAt)

	reopened := false
	resp = test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "PUT",
		URL:            "/api/v1/tasks/" + task.ID.String(),
		Body:           tasks_dto.UpdateTaskRequestDTO{Completed: &reopened},
		AuthToken:      "Bearer " + user.Token,
		ExpectedStatus: http.StatusOK,
	})

	require.NoError(t, json.Unmarshal(resp.Body, &updated))
	assert.Nil(t, updated.CompletedAt)
}
