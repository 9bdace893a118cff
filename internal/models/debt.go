package models

import (
	"strings"

	"github.com/budgetpilot/backend/internal/engine"
	"github.com/budgetpilot/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Debt is one debt of the plan.
type Debt struct {
	DefaultModel
	Type              string // Free-form, e.g. creditCard or loan
	Balance           decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	MinPaymentMonthly decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDay            int
	PayoffGoal        string // Empty or one of ASAP, 6mo, 12mo, 24mo, customDate
	PayoffGoalDate    types.Date
	APR               *decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	d.Type = strings.TrimSpace(d.Type)

	if d.Balance.IsNegative() || d.MinPaymentMonthly.IsNegative() {
		return ErrAmountNegative
	}

	if d.APR != nil && d.APR.IsNegative() {
		return ErrAmountNegative
	}

	validGoals := []string{
		"",
		string(engine.PayoffGoalASAP),
		string(engine.PayoffGoal6Months),
		string(engine.PayoffGoal12Months),
		string(engine.PayoffGoal24Months),
		string(engine.PayoffGoalCustomDate),
	}
	if !slices.Contains(validGoals, d.PayoffGoal) {
		return ErrPayoffGoalInvalid
	}

	if d.PayoffGoal == string(engine.PayoffGoalCustomDate) && d.PayoffGoalDate.IsZero() {
		return ErrPayoffDateMissing
	}

	return nil
}

// Engine returns the record as calculation engine input.
func (d Debt) Engine() engine.Debt {
	return engine.Debt{
		Type:              d.Type,
		Balance:           d.Balance,
		MinPaymentMonthly: d.MinPaymentMonthly,
		DueDay:            d.DueDay,
		PayoffGoal:        engine.PayoffGoal(d.PayoffGoal),
		PayoffGoalDate:    d.PayoffGoalDate,
		APR:               d.APR,
	}
}
