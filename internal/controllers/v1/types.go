package v1

import (
	"github.com/budgetpilot/backend/internal/models"
	"github.com/budgetpilot/backend/internal/types"
	"github.com/shopspring/decimal"
)

// IrregularIncomeEditable represents the variable income configuration.
type IrregularIncomeEditable struct {
	Enabled     bool            `json:"enabled" example:"true" default:"false"`            // Is variable income counted?
	MonthlyAvg  decimal.Decimal `json:"monthlyAvg" example:"400"`                          // Average variable income per month
	Reliability string          `json:"reliability" example:"medium" default:"medium"`     // How reliable the average is: low, medium or high
}

// IncomeEditable represents all user configurable parameters of the
// income profile.
type IncomeEditable struct {
	PayFrequency string                  `json:"payFrequency" example:"monthly"`  // One of weekly, biweekly, monthly
	NetPayAmount decimal.Decimal         `json:"netPayAmount" example:"2800"`     // Net pay per pay period
	NextPayDate  types.Date              `json:"nextPayDate" example:"2026-09-01"` // Next pay date, used when no pay days are set
	PayDays      []int                   `json:"payDays" example:"1,15"`          // Recurring pay days of the month
	Irregular    IrregularIncomeEditable `json:"irregular"`
}

func (editable IncomeEditable) model() models.IncomeProfile {
	return models.IncomeProfile{
		PayFrequency:         editable.PayFrequency,
		NetPayAmount:         editable.NetPayAmount,
		NextPayDate:          editable.NextPayDate,
		PayDays:              editable.PayDays,
		IrregularEnabled:     editable.Irregular.Enabled,
		IrregularMonthlyAvg:  editable.Irregular.MonthlyAvg,
		IrregularReliability: editable.Irregular.Reliability,
	}
}

type Income struct {
	models.DefaultModel
	IncomeEditable
}

func newIncome(model models.IncomeProfile) Income {
	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			PayFrequency: model.PayFrequency,
			NetPayAmount: model.NetPayAmount,
			NextPayDate:  model.NextPayDate,
			PayDays:      model.PayDays,
			Irregular: IrregularIncomeEditable{
				Enabled:     model.IrregularEnabled,
				MonthlyAvg:  model.IrregularMonthlyAvg,
				Reliability: model.IrregularReliability,
			},
		},
	}
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                // The income profile
	Error *string `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// FixedExpenseEditable represents all user configurable parameters of a
// fixed expense.
type FixedExpenseEditable struct {
	Name          string          `json:"name" example:"Rent"`            // Name of the expense
	AmountMonthly decimal.Decimal `json:"amountMonthly" example:"1200"`   // Monthly amount
	Enabled       bool            `json:"enabled" example:"true" default:"true"` // Disabled expenses are excluded from all totals
}

func (editable FixedExpenseEditable) model() models.FixedExpense {
	return models.FixedExpense{
		Name:          editable.Name,
		AmountMonthly: editable.AmountMonthly,
		Enabled:       editable.Enabled,
	}
}

type FixedExpense struct {
	models.DefaultModel
	FixedExpenseEditable
}

func newFixedExpense(model models.FixedExpense) FixedExpense {
	return FixedExpense{
		DefaultModel: model.DefaultModel,
		FixedExpenseEditable: FixedExpenseEditable{
			Name:          model.Name,
			AmountMonthly: model.AmountMonthly,
			Enabled:       model.Enabled,
		},
	}
}

type FixedExpenseListResponse struct {
	Data  []FixedExpense `json:"data"`                                                // List of fixed expenses
	Error *string        `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// SubscriptionEditable represents all user configurable parameters of a
// subscription.
type SubscriptionEditable struct {
	Name          string          `json:"name" example:"Streaming"`   // Name of the subscription
	AmountMonthly decimal.Decimal `json:"amountMonthly" example:"13"` // Monthly amount
}

func (editable SubscriptionEditable) model() models.Subscription {
	return models.Subscription{
		Name:          editable.Name,
		AmountMonthly: editable.AmountMonthly,
	}
}

type Subscription struct {
	models.DefaultModel
	SubscriptionEditable
}

func newSubscription(model models.Subscription) Subscription {
	return Subscription{
		DefaultModel: model.DefaultModel,
		SubscriptionEditable: SubscriptionEditable{
			Name:          model.Name,
			AmountMonthly: model.AmountMonthly,
		},
	}
}

type SubscriptionListResponse struct {
	Data  []Subscription `json:"data"`                                                // List of subscriptions
	Error *string        `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// FlexibleCapsEditable represents the discretionary spending caps.
type FlexibleCapsEditable struct {
	EatingOut     decimal.Decimal `json:"eatingOut" example:"200"`
	Entertainment decimal.Decimal `json:"entertainment" example:"80"`
	Shopping      decimal.Decimal `json:"shopping" example:"100"`
	Misc          decimal.Decimal `json:"misc" example:"50"`
}

func (editable FlexibleCapsEditable) model() models.FlexibleSpending {
	return models.FlexibleSpending{
		EatingOut:     editable.EatingOut,
		Entertainment: editable.Entertainment,
		Shopping:      editable.Shopping,
		Misc:          editable.Misc,
	}
}

type FlexibleCaps struct {
	models.DefaultModel
	FlexibleCapsEditable
}

func newFlexibleCaps(model models.FlexibleSpending) FlexibleCaps {
	return FlexibleCaps{
		DefaultModel: model.DefaultModel,
		FlexibleCapsEditable: FlexibleCapsEditable{
			EatingOut:     model.EatingOut,
			Entertainment: model.Entertainment,
			Shopping:      model.Shopping,
			Misc:          model.Misc,
		},
	}
}

type FlexibleCapsResponse struct {
	Data  *FlexibleCaps `json:"data"`                                                // The flexible spending caps
	Error *string       `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// SavingsEditable represents all user configurable parameters of the
// savings goal.
type SavingsEditable struct {
	Enabled   bool            `json:"enabled" example:"true" default:"false"` // Is the savings contribution active?
	Mode      string          `json:"mode" example:"percent"`                 // One of fixedAmount, percent
	Value     decimal.Decimal `json:"value" example:"10"`                     // Amount or percentage, depending on the mode
	GoalLabel string          `json:"goalLabel" example:"Emergency fund"`     // Display label for the goal
}

func (editable SavingsEditable) model() models.SavingsGoal {
	return models.SavingsGoal{
		Enabled:   editable.Enabled,
		Mode:      editable.Mode,
		Value:     editable.Value,
		GoalLabel: editable.GoalLabel,
	}
}

type Savings struct {
	models.DefaultModel
	SavingsEditable
}

func newSavings(model models.SavingsGoal) Savings {
	return Savings{
		DefaultModel: model.DefaultModel,
		SavingsEditable: SavingsEditable{
			Enabled:   model.Enabled,
			Mode:      model.Mode,
			Value:     model.Value,
			GoalLabel: model.GoalLabel,
		},
	}
}

type SavingsResponse struct {
	Data  *Savings `json:"data"`                                                // The savings goal
	Error *string  `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// DebtEditable represents all user configurable parameters of a debt.
type DebtEditable struct {
	Type              string           `json:"type" example:"creditCard"`          // Free-form debt type
	Balance           decimal.Decimal  `json:"balance" example:"2400"`             // Current balance
	MinPaymentMonthly decimal.Decimal  `json:"minPaymentMonthly" example:"50"`     // Contractual minimum payment per month
	DueDay            int              `json:"dueDay" example:"15"`                // Day of the month the payment is due
	PayoffGoal        string           `json:"payoffGoal" example:"12mo"`          // Empty or one of ASAP, 6mo, 12mo, 24mo, customDate
	PayoffGoalDate    types.Date       `json:"payoffGoalDate" example:"2027-03-01"` // Target date, required for customDate goals
	APR               *decimal.Decimal `json:"apr" example:"19.99"`                // Annual percentage rate
}

func (editable DebtEditable) model() models.Debt {
	return models.Debt{
		Type:              editable.Type,
		Balance:           editable.Balance,
		MinPaymentMonthly: editable.MinPaymentMonthly,
		DueDay:            editable.DueDay,
		PayoffGoal:        editable.PayoffGoal,
		PayoffGoalDate:    editable.PayoffGoalDate,
		APR:               editable.APR,
	}
}

type Debt struct {
	models.DefaultModel
	DebtEditable
}

func newDebt(model models.Debt) Debt {
	return Debt{
		DefaultModel: model.DefaultModel,
		DebtEditable: DebtEditable{
			Type:              model.Type,
			Balance:           model.Balance,
			MinPaymentMonthly: model.MinPaymentMonthly,
			DueDay:            model.DueDay,
			PayoffGoal:        model.PayoffGoal,
			PayoffGoalDate:    model.PayoffGoalDate,
			APR:               model.APR,
		},
	}
}

type DebtListResponse struct {
	Data  []Debt  `json:"data"`                                                // List of debts
	Error *string `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// SettingsEditable represents all user configurable plan-wide settings.
type SettingsEditable struct {
	Currency   string          `json:"currency" example:"EUR" default:"EUR"` // ISO 4217 currency code
	BalanceNow decimal.Decimal `json:"balanceNow" example:"1500"`            // Current account balance
}

func (editable SettingsEditable) model() models.Settings {
	return models.Settings{
		Currency:   editable.Currency,
		BalanceNow: editable.BalanceNow,
	}
}

type Settings struct {
	models.DefaultModel
	SettingsEditable
}

func newSettings(model models.Settings) Settings {
	return Settings{
		DefaultModel: model.DefaultModel,
		SettingsEditable: SettingsEditable{
			Currency:   model.Currency,
			BalanceNow: model.BalanceNow,
		},
	}
}

type SettingsResponse struct {
	Data  *Settings `json:"data"`                                                // The settings
	Error *string   `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// PlanEditable is a full plan supplied inline with a calculation
// request instead of being read from the record store.
type PlanEditable struct {
	Income        *IncomeEditable        `json:"income"` // nil when no income profile is configured
	FixedExpenses []FixedExpenseEditable `json:"fixedExpenses"`
	Subscriptions []SubscriptionEditable `json:"subscriptions"`
	FlexibleCaps  FlexibleCapsEditable   `json:"flexibleCaps"`
	Savings       SavingsEditable        `json:"savings"`
	Debts         []DebtEditable         `json:"debts"`
	Settings      SettingsEditable       `json:"settings"`
}

func (editable PlanEditable) model() models.Plan {
	plan := models.Plan{
		Flexible: editable.FlexibleCaps.model(),
		Savings:  editable.Savings.model(),
		Settings: editable.Settings.model(),
	}

	if editable.Income != nil {
		income := editable.Income.model()
		plan.Income = &income
	}

	for _, expense := range editable.FixedExpenses {
		plan.FixedExpenses = append(plan.FixedExpenses, expense.model())
	}

	for _, subscription := range editable.Subscriptions {
		plan.Subscriptions = append(plan.Subscriptions, subscription.model())
	}

	for _, debt := range editable.Debts {
		plan.Debts = append(plan.Debts, debt.model())
	}

	return plan
}

// Plan is the full plan with all its sections.
type Plan struct {
	Income        *Income        `json:"income"` // nil when no income profile is configured
	FixedExpenses []FixedExpense `json:"fixedExpenses"`
	Subscriptions []Subscription `json:"subscriptions"`
	FlexibleCaps  FlexibleCaps   `json:"flexibleCaps"`
	Savings       Savings        `json:"savings"`
	Debts         []Debt         `json:"debts"`
	Settings      Settings       `json:"settings"`
}

func newPlan(model models.Plan) Plan {
	plan := Plan{
		FixedExpenses: make([]FixedExpense, 0, len(model.FixedExpenses)),
		Subscriptions: make([]Subscription, 0, len(model.Subscriptions)),
		Debts:         make([]Debt, 0, len(model.Debts)),
		FlexibleCaps:  newFlexibleCaps(model.Flexible),
		Savings:       newSavings(model.Savings),
		Settings:      newSettings(model.Settings),
	}

	if model.Income != nil {
		income := newIncome(*model.Income)
		plan.Income = &income
	}

	for _, expense := range model.FixedExpenses {
		plan.FixedExpenses = append(plan.FixedExpenses, newFixedExpense(expense))
	}

	for _, subscription := range model.Subscriptions {
		plan.Subscriptions = append(plan.Subscriptions, newSubscription(subscription))
	}

	for _, debt := range model.Debts {
		plan.Debts = append(plan.Debts, newDebt(debt))
	}

	return plan
}

type PlanResponse struct {
	Data  *Plan   `json:"data"`                                                // The full plan
	Error *string `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}
