package quota

import (
	"strings"
	"time"

	"servicehub.com/servicehub/internal/constants"
)

type PeriodKind string

const (
	PeriodDaily   PeriodKind = "daily"
	PeriodMonthly PeriodKind = "monthly"
)

// Policy is the response-submission allowance for one subscription plan at a
// given instant. When Unlimited is set the other fields are not meaningful.
type Policy struct {
	Limit       int
	Unlimited   bool
	PeriodStart time.Time
	PeriodKind  PeriodKind
}

type planRule struct {
	limit      int
	unlimited  bool
	periodKind PeriodKind
}

var planRules = map[constants.SubscriptionPlan]planRule{
	constants.PlanBasic:    {limit: 15, periodKind: PeriodDaily},
	constants.PlanStandard: {limit: 50, periodKind: PeriodMonthly},
	constants.PlanPremium:  {unlimited: true},
}

// Evaluate computes the quota policy for a plan at the given instant. Plan
// matching is case-insensitive; unknown or empty plans fall back to the
// basic rule so a misconfigured subscription never grants unlimited access.
// Evaluate performs no I/O: counting usage within the period is the
// caller's job.
func Evaluate(plan constants.SubscriptionPlan, now time.Time) Policy {
	normalized := constants.SubscriptionPlan(strings.ToLower(strings.TrimSpace(string(plan))))

	rule, ok := planRules[normalized]
	if !ok {
		rule = planRules[constants.PlanBasic]
	}

	if rule.unlimited {
		return Policy{Unlimited: true}
	}

	return Policy{
		Limit:       rule.limit,
		PeriodStart: periodStart(rule.periodKind, now),
		PeriodKind:  rule.periodKind,
	}
}

func periodStart(kind PeriodKind, now time.Time) time.Time {
	switch kind {
	case PeriodMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}
