package policies

import (
	"time"

	"github.com/google/uuid"
)

// Stage separates cheap preliminary checks (run while rendering a form) from
// full submission-time validation.
type Stage string

const (
	StagePreliminary Stage = "preliminary"
	StageSubmission  Stage = "submission"
)

// Context carries the facts rules evaluate against. AccountName is empty for
// preliminary account-creation checks; name validation happens at submission.
type Context struct {
	Timestamp          time.Time
	UserID             uuid.UUID
	AccountName        string
	PendingInvitations int
}

type Decision struct {
	Allowed bool     `json:"allowed"`
	Reasons []string `json:"reasons"`
}

// Rule is a single policy applied at one or more stages. Evaluate returns a
// denial reason, or "" when the rule passes.
type Rule interface {
	Name() string
	Stages() []Stage
	Evaluate(ctx Context) string
}
