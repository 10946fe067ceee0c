package policies

import (
	"fmt"
	"strings"
)

// ForbiddenAccountNameRule rejects team account names containing any of the
// configured words. Name is only known at submission time.
type ForbiddenAccountNameRule struct {
	Words []string
}

func (r *ForbiddenAccountNameRule) Name() string {
	return "forbidden-account-name"
}

func (r *ForbiddenAccountNameRule) Stages() []Stage {
	return []Stage{StageSubmission}
}

func (r *ForbiddenAccountNameRule) Evaluate(ctx Context) string {
	name := strings.ToLower(ctx.AccountName)

	for _, word := range r.Words {
		if word == "" {
			continue
		}

		if strings.Contains(name, strings.ToLower(word)) {
			return fmt.Sprintf("account name may not contain %q", word)
		}
	}

	return ""
}

// MaxPendingInvitationsRule caps the number of outstanding invitations per
// account.
type MaxPendingInvitationsRule struct {
	Max int
}

func (r *MaxPendingInvitationsRule) Name() string {
	return "max-pending-invitations"
}

func (r *MaxPendingInvitationsRule) Stages() []Stage {
	return []Stage{StagePreliminary, StageSubmission}
}

func (r *MaxPendingInvitationsRule) Evaluate(ctx Context) string {
	if ctx.PendingInvitations >= r.Max {
		return fmt.Sprintf(
			"the account already has %d pending invitations (limit %d)",
			ctx.PendingInvitations,
			r.Max,
		)
	}

	return ""
}
