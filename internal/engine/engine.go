// Package engine implements the budget calculation engine.
//
// A calculation is a pure function of the plan records and the current
// date. The engine holds no state between invocations, callers own the
// lifecycle of all records passed in.
package engine

import (
	"errors"

	"github.com/budgetpilot/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Validation errors. All of them are detected before any arithmetic runs,
// the engine never returns a partially computed result.
var (
	ErrMissingIncome            = errors.New("no income profile is configured")
	ErrInvalidPayFrequency      = errors.New("the pay frequency must be one of weekly, biweekly or monthly")
	ErrAmountNotPositive        = errors.New("the net pay amount must be larger than zero")
	ErrAmountNegative           = errors.New("amounts must not be negative")
	ErrInvalidSavingsMode       = errors.New("the savings mode must be fixedAmount or percent")
	ErrSavingsPercentOutOfRange = errors.New("the savings percentage must be between 0 and 50")
	ErrInvalidPayoffGoal        = errors.New("the payoff goal must be one of ASAP, 6mo, 12mo, 24mo or customDate")
	ErrPayoffDateMissing        = errors.New("a payoff goal with a custom date needs the target date to be set")
)

// avgDaysPerMonth is used for all month proration. It is intentionally not
// calendar-exact, see the safe-to-spend calculation.
var avgDaysPerMonth = decimal.NewFromFloat(30.44)

// PayFrequency is the interval in which the net pay amount is received.
type PayFrequency string

const (
	PayFrequencyWeekly   PayFrequency = "weekly"
	PayFrequencyBiweekly PayFrequency = "biweekly"
	PayFrequencyMonthly  PayFrequency = "monthly"
)

// Reliability grades how much of the irregular income average can be
// counted on.
type Reliability string

const (
	ReliabilityLow    Reliability = "low"
	ReliabilityMedium Reliability = "medium"
	ReliabilityHigh   Reliability = "high"
)

// IrregularIncome is variable income on top of the regular pay.
type IrregularIncome struct {
	Enabled     bool            `json:"enabled"`
	MonthlyAvg  decimal.Decimal `json:"monthlyAvg"`
	Reliability Reliability     `json:"reliability"`
}

// Income is the pay schedule of the plan.
//
// The next payday is derived from PayDays when set: one day of the month
// for monthly pay, two for biweekly. Without a recurring rule, the
// explicitly stored NextPayDate is used.
type Income struct {
	PayFrequency PayFrequency     `json:"payFrequency"`
	NetPayAmount decimal.Decimal  `json:"netPayAmount"`
	NextPayDate  types.Date       `json:"nextPayDate"`
	PayDays      []int            `json:"payDays"`
	Irregular    *IrregularIncome `json:"irregular"`
}

// FixedExpense is a recurring monthly expense. Disabled expenses are
// excluded from all totals but kept so they can be re-enabled.
type FixedExpense struct {
	Name          string          `json:"name"`
	AmountMonthly decimal.Decimal `json:"amountMonthly"`
	Enabled       bool            `json:"enabled"`
}

// Subscription is a recurring monthly expense that is always included.
type Subscription struct {
	Name          string          `json:"name"`
	AmountMonthly decimal.Decimal `json:"amountMonthly"`
}

// FlexibleCaps are discretionary spending ceilings per category. They are
// informational and never part of the essential outflow.
type FlexibleCaps struct {
	EatingOut     decimal.Decimal `json:"eatingOut"`
	Entertainment decimal.Decimal `json:"entertainment"`
	Shopping      decimal.Decimal `json:"shopping"`
	Misc          decimal.Decimal `json:"misc"`
}

// Total returns the sum of all category caps.
func (f FlexibleCaps) Total() decimal.Decimal {
	return f.EatingOut.Add(f.Entertainment).Add(f.Shopping).Add(f.Misc)
}

// SavingsMode determines how the savings contribution is calculated.
type SavingsMode string

const (
	SavingsModeFixedAmount SavingsMode = "fixedAmount"
	SavingsModePercent     SavingsMode = "percent"
)

// Savings is the monthly savings contribution of the plan.
type Savings struct {
	Enabled   bool            `json:"enabled"`
	Mode      SavingsMode     `json:"mode"`
	Value     decimal.Decimal `json:"value"`
	GoalLabel string          `json:"goalLabel"`
}

// PayoffGoal is the horizon over which a debt should be amortized to zero.
type PayoffGoal string

const (
	PayoffGoalASAP       PayoffGoal = "ASAP"
	PayoffGoal6Months    PayoffGoal = "6mo"
	PayoffGoal12Months   PayoffGoal = "12mo"
	PayoffGoal24Months   PayoffGoal = "24mo"
	PayoffGoalCustomDate PayoffGoal = "customDate"
)

// Debt is a single debt of the plan. A payoff goal together with APR data
// switches the debt from minimum payments to goal-amortized payments.
type Debt struct {
	Type              string           `json:"type"`
	Balance           decimal.Decimal  `json:"balance"`
	MinPaymentMonthly decimal.Decimal  `json:"minPaymentMonthly"`
	DueDay            int              `json:"dueDay"`
	PayoffGoal        PayoffGoal       `json:"payoffGoal"`
	PayoffGoalDate    types.Date       `json:"payoffGoalDate"`
	APR               *decimal.Decimal `json:"apr"`
}

// Input is the complete input record for one calculation.
type Input struct {
	Today         types.Date      `json:"today"`
	BalanceNow    decimal.Decimal `json:"balanceNow"`
	Income        *Income         `json:"income"`
	FixedExpenses []FixedExpense  `json:"fixedExpenses"`
	Subscriptions []Subscription  `json:"subscriptions"`
	FlexibleCaps  FlexibleCaps    `json:"flexibleCaps"`
	Savings       Savings         `json:"savings"`
	Debts         []Debt          `json:"debts"`
}

// MonthlyTotals is the monthly outflow breakdown.
//
// Essential is the non-discretionary sum of fixed expenses, subscriptions,
// savings and required debt service. Flexible caps are listed for display
// only.
type MonthlyTotals struct {
	Fixed         decimal.Decimal `json:"fixedMonthly"`
	Subscriptions decimal.Decimal `json:"subscriptionsMonthly"`
	FlexibleCaps  decimal.Decimal `json:"flexibleCapsMonthly"`
	Savings       decimal.Decimal `json:"savingsMonthly"`
	Debt          decimal.Decimal `json:"debtRequiredMonthly"`
	Essential     decimal.Decimal `json:"essentialMonthly"`
}

// Result is the outcome of one calculation. It is derived data and never
// persisted. All monetary fields are rounded to two decimal places and
// always set, the safe-to-spend figures are zero for infeasible plans.
type Result struct {
	Feasible               bool            `json:"feasible"`
	IncomeMonthly          decimal.Decimal `json:"incomeMonthly"`
	Totals                 MonthlyTotals   `json:"totals"`
	DaysUntilPayday        int             `json:"daysUntilPayday"`
	NextPayDate            types.Date      `json:"nextPayDate"`
	SafeToSpendUntilPayday decimal.Decimal `json:"safeToSpendUntilPayday"`
	SafeToSpendPerDay      decimal.Decimal `json:"safeToSpendPerDay"`
	Warnings               []string        `json:"warnings"`
	Suggestions            []Suggestion    `json:"suggestions"`
}
