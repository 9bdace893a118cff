package models

import (
	"strings"

	"github.com/budgetpilot/backend/internal/engine"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Subscription is one recurring subscription of the plan. Unlike fixed
// expenses, subscriptions have no enabled flag and always count.
type Subscription struct {
	DefaultModel
	Name          string
	AmountMonthly decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (s *Subscription) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)

	if s.AmountMonthly.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// Engine returns the record as calculation engine input.
func (s Subscription) Engine() engine.Subscription {
	return engine.Subscription{
		Name:          s.Name,
		AmountMonthly: s.AmountMonthly,
	}
}
