package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNegative       = errors.New("amounts must not be negative")
	ErrNetPayNotPositive    = errors.New("the net pay amount must be larger than zero")
	ErrPayFrequencyInvalid  = errors.New("the pay frequency must be one of weekly, biweekly or monthly")
	ErrSavingsModeInvalid   = errors.New("the savings mode must be fixedAmount or percent")
	ErrSavingsValueInvalid  = errors.New("the savings percentage must be between 0 and 50")
	ErrPayoffGoalInvalid    = errors.New("the payoff goal must be one of ASAP, 6mo, 12mo, 24mo or customDate")
	ErrPayoffDateMissing    = errors.New("a payoff goal with a custom date needs the target date to be set")
	ErrCurrencyCodeInvalid  = errors.New("the currency must be a valid ISO 4217 code")
)
