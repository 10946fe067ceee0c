package policies

import "slices"

// Evaluator runs the configured rules for one concern (account creation,
// invitations). With no rules configured for a stage it default-allows.
type Evaluator struct {
	rules []Rule
}

func NewEvaluator(rules ...Rule) *Evaluator {
	return &Evaluator{rules: rules}
}

func (e *Evaluator) HasPoliciesForStage(stage Stage) bool {
	for _, rule := range e.rules {
		if slices.Contains(rule.Stages(), stage) {
			return true
		}
	}

	return false
}

func (e *Evaluator) RulesForStage(stage Stage) int {
	count := 0
	for _, rule := range e.rules {
		if slices.Contains(rule.Stages(), stage) {
			count++
		}
	}

	return count
}

// Evaluate applies every rule bound to the stage and collects denial
// reasons. Callers surface the first reason to the user.
func (e *Evaluator) Evaluate(ctx Context, stage Stage) Decision {
	reasons := make([]string, 0)

	for _, rule := range e.rules {
		if !slices.Contains(rule.Stages(), stage) {
			continue
		}

		if reason := rule.Evaluate(ctx); reason != "" {
			reasons = append(reasons, reason)
		}
	}

	return Decision{
		Allowed: len(reasons) == 0,
		Reasons: reasons,
	}
}
