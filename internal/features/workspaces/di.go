package workspaces

import (
	"sync"

	"clientbase-backend/internal/config"
	"clientbase-backend/internal/features/policies"

	accounts_repositories "clientbase-backend/internal/features/accounts/repositories"
	users_repositories "clientbase-backend/internal/features/users/repositories"
)

var (
	workspaceService     *WorkspaceService
	workspaceServiceOnce sync.Once

	workspaceController     *WorkspaceController
	workspaceControllerOnce sync.Once
)

func GetWorkspaceService() *WorkspaceService {
	workspaceServiceOnce.Do(func() {
		workspaceService = NewWorkspaceService(
			users_repositories.GetUserRepository(),
			accounts_repositories.GetAccountRepository(),
			accounts_repositories.GetMembershipRepository(),
			policies.GetAccountCreationEvaluator(),
			config.GetEnv().EnableTeamAccounts,
		)
	})

	return workspaceService
}

func GetWorkspaceController() *WorkspaceController {
	workspaceControllerOnce.Do(func() {
		workspaceController = &WorkspaceController{GetWorkspaceService()}
	})

	return workspaceController
}
