package policies

import (
	"strings"
	"sync"

	"clientbase-backend/internal/config"
)

var (
	accountCreationEvaluator *Evaluator
	invitationsEvaluator     *Evaluator
	once                     sync.Once
)

// GetAccountCreationEvaluator gates team-account creation.
func GetAccountCreationEvaluator() *Evaluator {
	once.Do(buildEvaluators)
	return accountCreationEvaluator
}

// GetInvitationsEvaluator gates member invitations.
func GetInvitationsEvaluator() *Evaluator {
	once.Do(buildEvaluators)
	return invitationsEvaluator
}

func buildEvaluators() {
	env := config.GetEnv()

	accountRules := make([]Rule, 0)
	if env.ForbiddenAccountNameWords != "" {
		accountRules = append(accountRules, &ForbiddenAccountNameRule{
			Words: strings.Split(env.ForbiddenAccountNameWords, ","),
		})
	}

	invitationRules := make([]Rule, 0)
	if env.MaxPendingInvitations > 0 {
		invitationRules = append(invitationRules, &MaxPendingInvitationsRule{
			Max: env.MaxPendingInvitations,
		})
	}

	accountCreationEvaluator = NewEvaluator(accountRules...)
	invitationsEvaluator = NewEvaluator(invitationRules...)
}
