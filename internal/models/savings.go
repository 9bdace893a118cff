package models

import (
	"strings"

	"github.com/budgetpilot/backend/internal/engine"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal is the singleton record for the monthly savings
// contribution.
type SavingsGoal struct {
	DefaultModel
	Enabled   bool
	Mode      string          // One of fixedAmount, percent
	Value     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	GoalLabel string
}

func (s *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	s.GoalLabel = strings.TrimSpace(s.GoalLabel)

	// A disabled goal is stored as-is so that re-enabling it restores
	// the previous configuration.
	if !s.Enabled {
		return nil
	}

	switch engine.SavingsMode(s.Mode) {
	case engine.SavingsModeFixedAmount:
		if s.Value.IsNegative() {
			return ErrAmountNegative
		}
	case engine.SavingsModePercent:
		if s.Value.IsNegative() || s.Value.GreaterThan(decimal.NewFromInt(50)) {
			return ErrSavingsValueInvalid
		}
	default:
		return ErrSavingsModeInvalid
	}

	return nil
}

// Engine returns the record as calculation engine input.
func (s SavingsGoal) Engine() engine.Savings {
	return engine.Savings{
		Enabled:   s.Enabled,
		Mode:      engine.SavingsMode(s.Mode),
		Value:     s.Value,
		GoalLabel: s.GoalLabel,
	}
}
