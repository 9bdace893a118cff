package models

import (
	"strings"

	"github.com/budgetpilot/backend/internal/engine"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FixedExpense is one recurring monthly expense of the plan.
type FixedExpense struct {
	DefaultModel
	Name          string
	AmountMonthly decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Enabled       bool
}

func (f *FixedExpense) BeforeSave(_ *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)

	if f.AmountMonthly.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// Engine returns the record as calculation engine input.
func (f FixedExpense) Engine() engine.FixedExpense {
	return engine.FixedExpense{
		Name:          f.Name,
		AmountMonthly: f.AmountMonthly,
		Enabled:       f.Enabled,
	}
}
