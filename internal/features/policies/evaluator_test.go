package policies

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_Evaluator_NoRulesConfigured_DefaultAllows(t *testing.T) {
	evaluator := NewEvaluator()

	assert.False(t, evaluator.HasPoliciesForStage(StagePreliminary))

	decision := evaluator.Evaluate(Context{
		Timestamp: time.Now().UTC(),
		UserID:    uuid.New(),
	}, StagePreliminary)

	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Reasons)
}

func Test_Evaluator_RuleBoundToOtherStage_IsNotApplied(t *testing.T) {
	evaluator := NewEvaluator(&ForbiddenAccountNameRule{Words: []string{"acme"}})

	// Name rules only run at submission; preliminary checks pass.
	assert.False(t, evaluator.HasPoliciesForStage(StagePreliminary))
	assert.True(t, evaluator.HasPoliciesForStage(StageSubmission))

	decision := evaluator.Evaluate(Context{AccountName: "acme corp"}, StagePreliminary)
	assert.True(t, decision.Allowed)
}

func Test_Evaluator_DenialCollectsReasons_FirstIsSurfaced(t *testing.T) {
	evaluator := NewEvaluator(
		&ForbiddenAccountNameRule{Words: []string{"acme", "evil"}},
		&MaxPendingInvitationsRule{Max: 2},
	)

	decision := evaluator.Evaluate(Context{
		AccountName:        "Evil Acme Inc",
		PendingInvitations: 5,
	}, StageSubmission)

	assert.False(t, decision.Allowed)
	assert.Len(t, decision.Reasons, 2)
	assert.Equal(t, `account name may not contain "acme"`, decision.Reasons[0])
}

func Test_MaxPendingInvitationsRule_UnderLimit_Passes(t *testing.T) {
	rule := &MaxPendingInvitationsRule{Max: 3}

	assert.Empty(t, rule.Evaluate(Context{PendingInvitations: 2}))
	assert.NotEmpty(t, rule.Evaluate(Context{PendingInvitations: 3}))
}

func Test_ForbiddenAccountNameRule_IsCaseInsensitive(t *testing.T) {
	rule := &ForbiddenAccountNameRule{Words: []string{"Internal"}}

	assert.NotEmpty(t, rule.Evaluate(Context{AccountName: "INTERNAL tools"}))
	assert.Empty(t, rule.Evaluate(Context{AccountName: "External tools"}))
}
