package engine

import "github.com/shopspring/decimal"

var percentDivisor = decimal.NewFromInt(100)

// fixedMonthly sums all enabled fixed expenses.
func fixedMonthly(expenses []FixedExpense) decimal.Decimal {
	sum := decimal.Zero
	for _, expense := range expenses {
		if expense.Enabled {
			sum = sum.Add(expense.AmountMonthly)
		}
	}

	return sum
}

// subscriptionsMonthly sums all subscriptions. Subscriptions have no
// enable toggle, they always count.
func subscriptionsMonthly(subscriptions []Subscription) decimal.Decimal {
	sum := decimal.Zero
	for _, subscription := range subscriptions {
		sum = sum.Add(subscription.AmountMonthly)
	}

	return sum
}

// savingsMonthly resolves the savings contribution against the normalized
// monthly income. A disabled savings goal contributes nothing.
func savingsMonthly(savings Savings, incomeMonthly decimal.Decimal) decimal.Decimal {
	if !savings.Enabled {
		return decimal.Zero
	}

	switch savings.Mode {
	case SavingsModeFixedAmount:
		return savings.Value
	case SavingsModePercent:
		return incomeMonthly.Mul(savings.Value).Div(percentDivisor)
	}

	return decimal.Zero
}

// monthlyTotals aggregates all obligations into the breakdown exposed in
// the result.
func monthlyTotals(input Input, incomeMonthly, debtRequired decimal.Decimal) MonthlyTotals {
	fixed := fixedMonthly(input.FixedExpenses)
	subscriptions := subscriptionsMonthly(input.Subscriptions)
	savings := savingsMonthly(input.Savings, incomeMonthly)

	return MonthlyTotals{
		Fixed:         fixed,
		Subscriptions: subscriptions,
		FlexibleCaps:  input.FlexibleCaps.Total(),
		Savings:       savings,
		Debt:          debtRequired,
		Essential:     fixed.Add(subscriptions).Add(savings).Add(debtRequired),
	}
}
