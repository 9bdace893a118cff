package models

import (
	"github.com/budgetpilot/backend/internal/engine"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FlexibleSpending is the singleton record for the discretionary
// spending caps.
type FlexibleSpending struct {
	DefaultModel
	EatingOut     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Entertainment decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Shopping      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Misc          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (f *FlexibleSpending) BeforeSave(_ *gorm.DB) error {
	for _, c := range []decimal.Decimal{f.EatingOut, f.Entertainment, f.Shopping, f.Misc} {
		if c.IsNegative() {
			return ErrAmountNegative
		}
	}

	return nil
}

// Engine returns the record as calculation engine input.
func (f FlexibleSpending) Engine() engine.FlexibleCaps {
	return engine.FlexibleCaps{
		EatingOut:     f.EatingOut,
		Entertainment: f.Entertainment,
		Shopping:      f.Shopping,
		Misc:          f.Misc,
	}
}
