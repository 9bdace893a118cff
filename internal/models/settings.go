package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Settings is the singleton record for plan-wide settings.
type Settings struct {
	DefaultModel
	Currency   string          // ISO 4217 currency code, default EUR
	BalanceNow decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Current account balance, informational
}

func (s *Settings) BeforeSave(_ *gorm.DB) error {
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))
	if s.Currency == "" {
		s.Currency = "EUR"
	}

	if _, err := currency.ParseISO(s.Currency); err != nil {
		return ErrCurrencyCodeInvalid
	}

	return nil
}
