package dashboard

import (
	"clientbase-backend/internal/util/logger"

	accounts_models "clientbase-backend/internal/features/accounts/models"
	accounts_repositories "clientbase-backend/internal/features/accounts/repositories"
	clients_models "clientbase-backend/internal/features/clients/models"
	clients_repositories "clientbase-backend/internal/features/clients/repositories"
	users_models "clientbase-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type DashboardService struct {
	membershipRepository *accounts_repositories.MembershipRepository
	accountRepository    *accounts_repositories.AccountRepository
	clientRepository     *clients_repositories.ClientRepository
}

// GetPersonalDashboard aggregates clients across the personal account and
// every team membership. Any query failure degrades the whole aggregate to
// a zeroed dashboard; the page renders either way.
func (s *DashboardService) GetPersonalDashboard(
	user *users_models.User,
) *PersonalDashboardDTO {
	accountIDs, err := s.membershipRepository.GetUserAccountIDs(user.ID)
	if err != nil {
		logger.GetLogger().Error("failed to load membership ids for dashboard", "userID", user.ID, "error", err)
		return emptyDashboard()
	}

	teamAccounts, err := s.accountRepository.GetTeamAccountsByIDs(accountIDs)
	if err != nil {
		logger.GetLogger().Error("failed to load team accounts for dashboard", "userID", user.ID, "error", err)
		return emptyDashboard()
	}

	// The personal account participates in the client aggregate even though
	// it is not listed as a team account.
	clients, err := s.clientRepository.GetClientsByAccountIDs(append(accountIDs, user.ID))
	if err != nil {
		logger.GetLogger().Error("failed to load clients for dashboard", "userID", user.ID, "error", err)
		return emptyDashboard()
	}

	return BuildPersonalDashboard(teamAccounts, clients)
}

// BuildPersonalDashboard groups the fetched rows client-side: client counts
// per team account plus a global status breakdown.
func BuildPersonalDashboard(
	teamAccounts []accounts_models.Account,
	clients []clients_models.Client,
) *PersonalDashboardDTO {
	countsByAccount := map[uuid.UUID]int{}
	statusCounts := map[string]int{}

	for _, client := range clients {
		countsByAccount[client.AccountID]++
		statusCounts[string(client.Status)]++
	}

	summaries := make([]TeamAccountSummary, 0, len(teamAccounts))
	for _, account := range teamAccounts {
		summaries = append(summaries, TeamAccountSummary{
			ID:          account.ID,
			Name:        account.Name,
			Slug:        account.Slug,
			ClientCount: countsByAccount[account.ID],
		})
	}

	return &PersonalDashboardDTO{
		TotalClients:      len(clients),
		TotalTeamAccounts: len(teamAccounts),
		TeamAccounts:      summaries,
		StatusCounts:      statusCounts,
	}
}

func emptyDashboard() *PersonalDashboardDTO {
	return &PersonalDashboardDTO{
		TeamAccounts: []TeamAccountSummary{},
		StatusCounts: map[string]int{},
	}
}
