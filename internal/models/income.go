package models

import (
	"github.com/budgetpilot/backend/internal/engine"
	"github.com/budgetpilot/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// IncomeProfile is the singleton income record of the plan.
type IncomeProfile struct {
	DefaultModel
	PayFrequency string          // One of weekly, biweekly, monthly
	NetPayAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	NextPayDate  types.Date
	PayDays      []int `gorm:"serializer:json"` // Recurring pay days of the month, up to two

	IrregularEnabled     bool
	IrregularMonthlyAvg  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	IrregularReliability string          // One of low, medium, high
}

func (i *IncomeProfile) BeforeSave(_ *gorm.DB) error {
	validFrequencies := []string{
		string(engine.PayFrequencyWeekly),
		string(engine.PayFrequencyBiweekly),
		string(engine.PayFrequencyMonthly),
	}
	if !slices.Contains(validFrequencies, i.PayFrequency) {
		return ErrPayFrequencyInvalid
	}

	if !i.NetPayAmount.IsPositive() {
		return ErrNetPayNotPositive
	}

	if i.IrregularMonthlyAvg.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// Engine returns the record as calculation engine input.
func (i IncomeProfile) Engine() *engine.Income {
	income := &engine.Income{
		PayFrequency: engine.PayFrequency(i.PayFrequency),
		NetPayAmount: i.NetPayAmount,
		NextPayDate:  i.NextPayDate,
		PayDays:      i.PayDays,
	}

	if i.IrregularEnabled {
		income.Irregular = &engine.IrregularIncome{
			Enabled:     true,
			MonthlyAvg:  i.IrregularMonthlyAvg,
			Reliability: engine.Reliability(i.IrregularReliability),
		}
	}

	return income
}
