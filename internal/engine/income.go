package engine

import (
	"fmt"

	"github.com/budgetpilot/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var (
	weeksPerMonth     = decimal.NewFromInt(52).Div(decimal.NewFromInt(12))
	payPeriodsPerBiwk = decimal.NewFromInt(26).Div(decimal.NewFromInt(12))
)

// reliabilityMultipliers weight the irregular income average before it
// counts toward the monthly income.
var reliabilityMultipliers = map[Reliability]decimal.Decimal{
	ReliabilityLow:    decimal.NewFromFloat(0.5),
	ReliabilityMedium: decimal.NewFromFloat(0.75),
	ReliabilityHigh:   decimal.NewFromInt(1),
}

// NormalizeIncome converts the pay schedule into a canonical monthly
// income figure. Enabled irregular income is added after weighting it
// with its reliability multiplier.
func NormalizeIncome(income Income) (decimal.Decimal, error) {
	if !income.NetPayAmount.IsPositive() {
		return decimal.Zero, ErrAmountNotPositive
	}

	var monthly decimal.Decimal
	switch income.PayFrequency {
	case PayFrequencyWeekly:
		monthly = income.NetPayAmount.Mul(weeksPerMonth)
	case PayFrequencyBiweekly:
		monthly = income.NetPayAmount.Mul(payPeriodsPerBiwk)
	case PayFrequencyMonthly:
		monthly = income.NetPayAmount
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPayFrequency, income.PayFrequency)
	}

	if income.Irregular != nil && income.Irregular.Enabled {
		multiplier, ok := reliabilityMultipliers[income.Irregular.Reliability]
		if !ok {
			multiplier = reliabilityMultipliers[ReliabilityMedium]
		}

		monthly = monthly.Add(income.Irregular.MonthlyAvg.Mul(multiplier))
	}

	return monthly, nil
}

// NextPayday determines the next pay date on or after today.
//
// With a recurring rule, the candidate days of the current month are
// checked first, clamped to the last valid day of that month. When all of
// them have passed, the rule rolls over to the next month. Without a rule
// the explicitly stored next pay date is used. An explicit date that has
// already passed degrades to today; the second return value reports this
// so the caller can surface a staleness warning.
func NextPayday(income Income, today types.Date) (types.Date, bool) {
	if len(income.PayDays) > 0 {
		// Candidates of this and the next month, earliest first
		candidates := make([]types.Date, 0, 2*len(income.PayDays))
		for _, day := range income.PayDays {
			candidates = append(candidates, types.NewDate(today.Year(), today.Month(), day))
		}

		next := types.NewDate(today.Year(), today.Month()+1, 1)
		for _, day := range income.PayDays {
			candidates = append(candidates, types.NewDate(next.Year(), next.Month(), day))
		}

		slices.SortFunc(candidates, func(a, b types.Date) int {
			return b.DaysUntil(a)
		})

		for _, candidate := range candidates {
			if !candidate.Before(today) {
				return candidate, false
			}
		}
	}

	if !income.NextPayDate.IsZero() && !income.NextPayDate.Before(today) {
		return income.NextPayDate, false
	}

	return today, true
}
