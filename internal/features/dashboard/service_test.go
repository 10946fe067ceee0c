package dashboard

import (
	"testing"

	accounts_models "clientbase-backend/internal/features/accounts/models"
	clients_enums "clientbase-backend/internal/features/clients/enums"
	clients_models "clientbase-backend/internal/features/clients/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_BuildPersonalDashboard_GroupsClientsPerAccount(t *testing.T) {
	teamA := accounts_models.Account{ID: uuid.New(), Name: "Team A"}
	teamB := accounts_models.Account{ID: uuid.New(), Name: "Team B"}
	personalID := uuid.New()

	clients := []clients_models.Client{
		{AccountID: teamA.ID, Status: clients_enums.ClientStatusLead},
		{AccountID: teamA.ID, Status: clients_enums.ClientStatusActive},
		{AccountID: personalID, Status: clients_enums.ClientStatusLead},
	}

	result := BuildPersonalDashboard([]accounts_models.Account{teamA, teamB}, clients)

	assert.Equal(t, 3, result.TotalClients)
	assert.Equal(t, 2, result.TotalTeamAccounts)
	assert.Equal(t, 2, result.TeamAccounts[0].ClientCount)
	assert.Equal(t, 0, result.TeamAccounts[1].ClientCount)
	assert.Equal(t, map[string]int{"lead": 2, "active": 1}, result.StatusCounts)
}

func Test_BuildPersonalDashboard_Empty(t *testing.T) {
	result := BuildPersonalDashboard(nil, nil)

	assert.Equal(t, 0, result.TotalClients)
	assert.Equal(t, 0, result.TotalTeamAccounts)
	assert.Empty(t, result.TeamAccounts)
	assert.Empty(t, result.StatusCounts)
}
