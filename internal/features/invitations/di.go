package invitations

import (
	"sync"

	"clientbase-backend/internal/features/audit_logs"
	"clientbase-backend/internal/features/policies"

	accounts_repositories "clientbase-backend/internal/features/accounts/repositories"
	users_repositories "clientbase-backend/internal/features/users/repositories"
)

var (
	invitationRepository = &InvitationRepository{}

	invitationService     *InvitationService
	invitationServiceOnce sync.Once

	invitationController     *InvitationController
	invitationControllerOnce sync.Once
)

func GetInvitationRepository() *InvitationRepository {
	return invitationRepository
}

func GetInvitationService() *InvitationService {
	invitationServiceOnce.Do(func() {
		invitationService = &InvitationService{
			invitationRepository,
			accounts_repositories.GetMembershipRepository(),
			users_repositories.GetUserRepository(),
			audit_logs.GetAuditLogService(),
			policies.GetInvitationsEvaluator(),
		}
	})

	return invitationService
}

func GetInvitationController() *InvitationController {
	invitationControllerOnce.Do(func() {
		invitationController = &InvitationController{GetInvitationService()}
	})

	return invitationController
}
