package engine

import (
	"fmt"
	"math"

	"github.com/budgetpilot/backend/internal/types"
	"github.com/shopspring/decimal"
)

var monthlyRateDivisor = decimal.NewFromInt(1200) // APR in percent to monthly rate

// payoffMonths resolves a payoff goal to a month count. The second return
// value reports whether a goal date in the past forced the horizon to its
// floor of one month.
func payoffMonths(debt Debt, today types.Date) (months int, clamped bool) {
	switch debt.PayoffGoal {
	case PayoffGoalASAP:
		return 1, false
	case PayoffGoal6Months:
		return 6, false
	case PayoffGoal12Months:
		return 12, false
	case PayoffGoal24Months:
		return 24, false
	case PayoffGoalCustomDate:
		days := today.DaysUntil(debt.PayoffGoalDate)
		months := int(math.Floor(float64(days) / 30.44))
		if months < 1 {
			return 1, true
		}

		return months, false
	}

	return 0, false
}

// amortizedPayment returns the monthly payment that pays off the balance
// in the given number of months.
//
// With an interest rate, the standard amortization formula
// payment = balance * r / (1 - (1+r)^-n) is used, with r being the
// monthly rate. Without one, the balance is split evenly.
func amortizedPayment(balance decimal.Decimal, months int, apr *decimal.Decimal) decimal.Decimal {
	if months < 1 {
		months = 1
	}

	n := decimal.NewFromInt(int64(months))
	if apr == nil || !apr.IsPositive() {
		return balance.Div(n)
	}

	r := apr.Div(monthlyRateDivisor)

	// Rearranged to payment = balance * r * (1+r)^n / ((1+r)^n - 1) so
	// that the exponent stays integral
	compound := decimal.NewFromInt(1).Add(r).Pow(n)
	return balance.Mul(r).Mul(compound).Div(compound.Sub(decimal.NewFromInt(1)))
}

// RequiredDebtService computes the total monthly payment needed across all
// debts.
//
// Debts with a payoff goal are amortized over the resolved horizon, with
// the contractual minimum payment as the floor. Debts without a goal fall
// back to the minimum payment, never to zero.
func RequiredDebtService(debts []Debt, today types.Date) (decimal.Decimal, []string) {
	total := decimal.Zero
	var warnings []string

	for _, debt := range debts {
		if debt.PayoffGoal == "" {
			total = total.Add(debt.MinPaymentMonthly)
			continue
		}

		months, clamped := payoffMonths(debt, today)
		if clamped {
			warnings = append(warnings, fmt.Sprintf(
				"the payoff date for the %s debt has already passed, the full balance is scheduled within a single month", debt.Type))
		}

		payment := amortizedPayment(debt.Balance, months, debt.APR)
		if payment.LessThan(debt.MinPaymentMonthly) {
			payment = debt.MinPaymentMonthly
		}

		total = total.Add(payment)
	}

	return total, warnings
}
