package accounts_services

import (
	"clientbase-backend/internal/features/audit_logs"
	"clientbase-backend/internal/features/policies"

	accounts_repositories "clientbase-backend/internal/features/accounts/repositories"
	users_services "clientbase-backend/internal/features/users/services"
)

var accountService = &AccountService{
	accounts_repositories.GetAccountRepository(),
	accounts_repositories.GetMembershipRepository(),
	audit_logs.GetAuditLogService(),
	policies.GetAccountCreationEvaluator(),
}

func GetAccountService() *AccountService {
	return accountService
}

// SetupDependencies closes the users -> accounts loop: sign-up provisions
// the personal account through an interface, so the packages stay acyclic.
func SetupDependencies() {
	users_services.GetUserService().SetPersonalAccountCreator(accountService)
}
