package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var maxSavingsPercent = decimal.NewFromInt(50)

// Calculate runs the full budget calculation for the given input.
//
// Validation happens before any arithmetic. When it fails, no result is
// returned at all. Warnings collected during the calculation are not
// errors, they travel inside the result.
func Calculate(input Input) (*Result, error) {
	return calculate(input, true)
}

// calculate is the recursion-safe core. Suggestion candidates are
// evaluated through it with suggestions disabled.
func calculate(input Input, withSuggestions bool) (*Result, error) {
	if input.Income == nil {
		return nil, ErrMissingIncome
	}

	if err := validate(input); err != nil {
		return nil, err
	}

	incomeMonthly, err := NormalizeIncome(*input.Income)
	if err != nil {
		return nil, err
	}

	nextPayDate, stale := NextPayday(*input.Income, input.Today)
	daysUntilPayday := input.Today.DaysUntil(nextPayDate)
	if daysUntilPayday < 1 {
		daysUntilPayday = 1
	}

	// Initialized so the result always carries a JSON array, never null
	warnings := []string{}
	if stale {
		warnings = append(warnings, "the stored next pay date has already passed, treating today as the next payday")
	}

	debtRequired, debtWarnings := RequiredDebtService(input.Debts, input.Today)
	warnings = append(warnings, debtWarnings...)

	totals := monthlyTotals(input, incomeMonthly, debtRequired)

	feasible := totals.Essential.LessThanOrEqual(incomeMonthly)

	dailyBudget := decimal.Zero
	if feasible {
		surplus := incomeMonthly.Sub(totals.Essential)
		if surplus.IsNegative() {
			surplus = decimal.Zero
		}

		dailyBudget = surplus.Div(avgDaysPerMonth)
	} else {
		shortfall := totals.Essential.Sub(incomeMonthly)
		warnings = append(warnings, fmt.Sprintf(
			"the plan is not feasible: the essential monthly outflow of %s exceeds the monthly income of %s by %s",
			totals.Essential.StringFixed(2), incomeMonthly.StringFixed(2), shortfall.StringFixed(2)))
	}

	result := &Result{
		Feasible:               feasible,
		IncomeMonthly:          incomeMonthly.Round(2),
		Totals:                 totals.rounded(),
		DaysUntilPayday:        daysUntilPayday,
		NextPayDate:            nextPayDate,
		SafeToSpendUntilPayday: dailyBudget.Mul(decimal.NewFromInt(int64(daysUntilPayday))).Round(2),
		SafeToSpendPerDay:      dailyBudget.Round(2),
		Warnings:               warnings,
		Suggestions:            []Suggestion{},
	}

	if withSuggestions {
		result.Suggestions = append(result.Suggestions, suggest(input, *result)...)
	}

	return result, nil
}

// rounded returns the totals with all figures rounded to two decimal
// places for display. Feasibility is decided on the unrounded values.
func (t MonthlyTotals) rounded() MonthlyTotals {
	return MonthlyTotals{
		Fixed:         t.Fixed.Round(2),
		Subscriptions: t.Subscriptions.Round(2),
		FlexibleCaps:  t.FlexibleCaps.Round(2),
		Savings:       t.Savings.Round(2),
		Debt:          t.Debt.Round(2),
		Essential:     t.Essential.Round(2),
	}
}

// validate checks all input records. Day-of-month values are exempt, they
// clamp by design.
func validate(input Input) error {
	income := input.Income
	if !income.NetPayAmount.IsPositive() {
		return ErrAmountNotPositive
	}

	switch income.PayFrequency {
	case PayFrequencyWeekly, PayFrequencyBiweekly, PayFrequencyMonthly:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPayFrequency, income.PayFrequency)
	}

	if income.Irregular != nil && income.Irregular.MonthlyAvg.IsNegative() {
		return fmt.Errorf("%w: irregular income average", ErrAmountNegative)
	}

	for _, expense := range input.FixedExpenses {
		if expense.AmountMonthly.IsNegative() {
			return fmt.Errorf("%w: fixed expense %q", ErrAmountNegative, expense.Name)
		}
	}

	for _, subscription := range input.Subscriptions {
		if subscription.AmountMonthly.IsNegative() {
			return fmt.Errorf("%w: subscription %q", ErrAmountNegative, subscription.Name)
		}
	}

	for _, cap := range []decimal.Decimal{input.FlexibleCaps.EatingOut, input.FlexibleCaps.Entertainment, input.FlexibleCaps.Shopping, input.FlexibleCaps.Misc} {
		if cap.IsNegative() {
			return fmt.Errorf("%w: flexible spending cap", ErrAmountNegative)
		}
	}

	if input.Savings.Enabled {
		switch input.Savings.Mode {
		case SavingsModeFixedAmount:
			if input.Savings.Value.IsNegative() {
				return fmt.Errorf("%w: savings amount", ErrAmountNegative)
			}
		case SavingsModePercent:
			if input.Savings.Value.IsNegative() || input.Savings.Value.GreaterThan(maxSavingsPercent) {
				return ErrSavingsPercentOutOfRange
			}
		default:
			return fmt.Errorf("%w: %q", ErrInvalidSavingsMode, input.Savings.Mode)
		}
	}

	for _, debt := range input.Debts {
		if debt.Balance.IsNegative() {
			return fmt.Errorf("%w: balance of the %s debt", ErrAmountNegative, debt.Type)
		}

		if debt.MinPaymentMonthly.IsNegative() {
			return fmt.Errorf("%w: minimum payment of the %s debt", ErrAmountNegative, debt.Type)
		}

		if debt.APR != nil && debt.APR.IsNegative() {
			return fmt.Errorf("%w: APR of the %s debt", ErrAmountNegative, debt.Type)
		}

		switch debt.PayoffGoal {
		case "", PayoffGoalASAP, PayoffGoal6Months, PayoffGoal12Months, PayoffGoal24Months:
		case PayoffGoalCustomDate:
			if debt.PayoffGoalDate.IsZero() {
				return ErrPayoffDateMissing
			}
		default:
			return fmt.Errorf("%w: %q", ErrInvalidPayoffGoal, debt.PayoffGoal)
		}
	}

	return nil
}
