package engine

import (
	"fmt"

	"github.com/budgetpilot/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Suggestion is a single-parameter plan adjustment together with its
// effect. Every suggestion is evaluated independently against the
// unmodified plan, they are not chained.
type Suggestion struct {
	Title             string          `json:"title"`
	EssentialMonthly  decimal.Decimal `json:"essentialMonthly"`
	Shortfall         decimal.Decimal `json:"shortfall"`
	SafeToSpendPerDay decimal.Decimal `json:"safeToSpendPerDay"`
	Delta             decimal.Decimal `json:"delta"`
}

var (
	savingsStep        = decimal.NewFromInt(50)
	savingsPercentStep = decimal.NewFromInt(5)
	capsBuffer         = decimal.NewFromFloat(1.05)
)

// suggest explores a bounded set of plan adjustments. For infeasible
// plans it searches for the smallest change that restores feasibility,
// for feasible plans it proposes optimizations.
func suggest(input Input, baseline Result) []Suggestion {
	if baseline.Feasible {
		return optimizationSuggestions(input, baseline)
	}

	return recoverySuggestions(input, baseline)
}

// recoverySuggestions are tried in a fixed order: reduce savings, extend
// debt horizons, cut flexible caps. The flexible-cap cut is only offered
// when neither of the first two eliminates the shortfall, since caps are
// not part of the essential outflow.
func recoverySuggestions(input Input, baseline Result) []Suggestion {
	var suggestions []Suggestion
	shortfall := baseline.Totals.Essential.Sub(baseline.IncomeMonthly)

	if input.Savings.Enabled && baseline.Totals.Savings.IsPositive() {
		modified := input.clone()
		title := reduceSavings(&modified.Savings, baseline, shortfall)

		if s := evaluate(modified, title, baseline); s != nil {
			suggestions = append(suggestions, *s)
		}
	}

	if extended, ok := extendPayoffGoals(input.Debts); ok {
		modified := input.clone()
		modified.Debts = extended

		if s := evaluate(modified, "Extend debt payoff goals to the next longer horizon", baseline); s != nil {
			suggestions = append(suggestions, *s)
		}
	}

	feasibleFound := false
	for _, s := range suggestions {
		if s.Shortfall.IsZero() {
			feasibleFound = true
			break
		}
	}

	capsTotal := input.FlexibleCaps.Total()
	if !feasibleFound && capsTotal.IsPositive() {
		reduced := capsTotal.Sub(shortfall)
		if reduced.IsNegative() {
			reduced = decimal.Zero
		}

		modified := input.clone()
		modified.FlexibleCaps = scaleCaps(input.FlexibleCaps, reduced.Div(capsTotal))

		title := fmt.Sprintf("Reduce flexible spending caps to %s per month", reduced.Round(2).StringFixed(2))
		if s := evaluate(modified, title, baseline); s != nil {
			suggestions = append(suggestions, *s)
		}
	}

	return suggestions
}

// optimizationSuggestions propose what to do with headroom in a feasible
// plan.
func optimizationSuggestions(input Input, baseline Result) []Suggestion {
	var suggestions []Suggestion

	modified := input.clone()
	var title string
	switch {
	case input.Savings.Enabled && input.Savings.Mode == SavingsModePercent:
		value := input.Savings.Value.Add(savingsPercentStep)
		if value.GreaterThan(maxSavingsPercent) {
			value = maxSavingsPercent
		}

		modified.Savings.Value = value
		title = fmt.Sprintf("Increase savings to %s%% of income", value.StringFixed(0))
	case input.Savings.Enabled:
		modified.Savings.Value = input.Savings.Value.Add(savingsStep)
		title = "Increase savings by 50 per month"
	default:
		modified.Savings = Savings{Enabled: true, Mode: SavingsModeFixedAmount, Value: savingsStep}
		title = "Start saving 50 per month"
	}

	if s := evaluate(modified, title, baseline); s != nil {
		suggestions = append(suggestions, *s)
	}

	if len(input.Debts) > 0 {
		faster := false
		modified = input.clone()
		for i, debt := range modified.Debts {
			if debt.PayoffGoal != PayoffGoal12Months {
				modified.Debts[i].PayoffGoal = PayoffGoal12Months
				modified.Debts[i].PayoffGoalDate = types.Date{}
				faster = true
			}
		}

		if faster {
			if s := evaluate(modified, "Pay off all debts within 12 months", baseline); s != nil {
				suggestions = append(suggestions, *s)
			}
		}
	}

	if input.FlexibleCaps.Total().IsPositive() {
		modified = input.clone()
		modified.FlexibleCaps = scaleCaps(input.FlexibleCaps, capsBuffer)

		if s := evaluate(modified, "Add a 5% buffer to the flexible spending caps", baseline); s != nil {
			suggestions = append(suggestions, *s)
		}
	}

	return suggestions
}

// evaluate recomputes the plan with the adjustment applied and reports
// its effect. Adjustments that fail validation are dropped silently, the
// baseline has already been validated.
func evaluate(modified Input, title string, baseline Result) *Suggestion {
	result, err := calculate(modified, false)
	if err != nil {
		return nil
	}

	shortfall := result.Totals.Essential.Sub(result.IncomeMonthly)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}

	return &Suggestion{
		Title:             title,
		EssentialMonthly:  result.Totals.Essential,
		Shortfall:         shortfall.Round(2),
		SafeToSpendPerDay: result.SafeToSpendPerDay,
		Delta:             result.SafeToSpendPerDay.Sub(baseline.SafeToSpendPerDay),
	}
}

// reduceSavings lowers the savings contribution by the shortfall, floored
// at zero, and returns the suggestion title.
func reduceSavings(savings *Savings, baseline Result, shortfall decimal.Decimal) string {
	remaining := baseline.Totals.Savings.Sub(shortfall)
	if !remaining.IsPositive() {
		savings.Enabled = false
		savings.Value = decimal.Zero
		return "Pause the savings contribution"
	}

	if savings.Mode == SavingsModePercent {
		// Round down so the reduced contribution still closes the gap
		value := remaining.Div(baseline.IncomeMonthly).Mul(percentDivisor).RoundFloor(2)
		savings.Value = value
		return fmt.Sprintf("Reduce savings to %s%% of income", value.String())
	}

	savings.Value = remaining.RoundFloor(2)
	return fmt.Sprintf("Reduce savings to %s per month", savings.Value.StringFixed(2))
}

// extendPayoffGoals moves every goal to the next longer bucket. The
// second return value reports whether any debt changed.
func extendPayoffGoals(debts []Debt) ([]Debt, bool) {
	next := map[PayoffGoal]PayoffGoal{
		PayoffGoalASAP:       PayoffGoal6Months,
		PayoffGoal6Months:    PayoffGoal12Months,
		PayoffGoal12Months:   PayoffGoal24Months,
		PayoffGoalCustomDate: PayoffGoal24Months,
	}

	extended := make([]Debt, len(debts))
	changed := false
	for i, debt := range debts {
		extended[i] = debt
		if goal, ok := next[debt.PayoffGoal]; ok {
			extended[i].PayoffGoal = goal
			changed = true
		}
	}

	return extended, changed
}

func scaleCaps(caps FlexibleCaps, factor decimal.Decimal) FlexibleCaps {
	return FlexibleCaps{
		EatingOut:     caps.EatingOut.Mul(factor),
		Entertainment: caps.Entertainment.Mul(factor),
		Shopping:      caps.Shopping.Mul(factor),
		Misc:          caps.Misc.Mul(factor),
	}
}

// clone deep-copies the input so suggestion candidates can be modified
// freely.
func (i Input) clone() Input {
	out := i

	if i.Income != nil {
		income := *i.Income
		if i.Income.Irregular != nil {
			irregular := *i.Income.Irregular
			income.Irregular = &irregular
		}

		income.PayDays = append([]int(nil), i.Income.PayDays...)
		out.Income = &income
	}

	out.FixedExpenses = append([]FixedExpense(nil), i.FixedExpenses...)
	out.Subscriptions = append([]Subscription(nil), i.Subscriptions...)

	out.Debts = make([]Debt, len(i.Debts))
	for idx, debt := range i.Debts {
		out.Debts[idx] = debt
		if debt.APR != nil {
			apr := *debt.APR
			out.Debts[idx].APR = &apr
		}
	}

	return out
}
