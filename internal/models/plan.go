package models

import (
	"errors"

	"github.com/budgetpilot/backend/internal/engine"
	"github.com/budgetpilot/backend/internal/types"
	"gorm.io/gorm"
)

// Plan is the complete set of records of the plan.
//
// Income is nil when no income profile has been configured yet, all
// other singletons fall back to their zero value.
type Plan struct {
	Income        *IncomeProfile
	FixedExpenses []FixedExpense
	Subscriptions []Subscription
	Flexible      FlexibleSpending
	Savings       SavingsGoal
	Debts         []Debt
	Settings      Settings
}

// LoadPlan reads all records of the plan from the database.
func LoadPlan(db *gorm.DB) (Plan, error) {
	var plan Plan

	var income IncomeProfile
	err := db.First(&income).Error
	if err == nil {
		plan.Income = &income
	} else if !errors.Is(err, ErrResourceNotFound) {
		return Plan{}, err
	}

	err = first(db, &plan.Flexible)
	if err != nil {
		return Plan{}, err
	}

	err = first(db, &plan.Savings)
	if err != nil {
		return Plan{}, err
	}

	err = first(db, &plan.Settings)
	if err != nil {
		return Plan{}, err
	}

	err = db.Order("created_at ASC").Find(&plan.FixedExpenses).Error
	if err != nil {
		return Plan{}, err
	}

	err = db.Order("created_at ASC").Find(&plan.Subscriptions).Error
	if err != nil {
		return Plan{}, err
	}

	err = db.Order("created_at ASC").Find(&plan.Debts).Error
	if err != nil {
		return Plan{}, err
	}

	return plan, nil
}

// first reads a singleton record, leaving the destination at its zero
// value when none exists yet.
func first(db *gorm.DB, dest any) error {
	err := db.First(dest).Error
	if err != nil && !errors.Is(err, ErrResourceNotFound) {
		return err
	}

	return nil
}

// EngineInput converts the plan to calculation engine input for the
// given day.
func (p Plan) EngineInput(today types.Date) engine.Input {
	input := engine.Input{
		Today:         today,
		BalanceNow:    p.Settings.BalanceNow,
		FlexibleCaps:  p.Flexible.Engine(),
		Savings:       p.Savings.Engine(),
		FixedExpenses: make([]engine.FixedExpense, 0, len(p.FixedExpenses)),
		Subscriptions: make([]engine.Subscription, 0, len(p.Subscriptions)),
		Debts:         make([]engine.Debt, 0, len(p.Debts)),
	}

	if p.Income != nil {
		input.Income = p.Income.Engine()
	}

	for _, expense := range p.FixedExpenses {
		input.FixedExpenses = append(input.FixedExpenses, expense.Engine())
	}

	for _, subscription := range p.Subscriptions {
		input.Subscriptions = append(input.Subscriptions, subscription.Engine())
	}

	for _, debt := range p.Debts {
		input.Debts = append(input.Debts, debt.Engine())
	}

	return input
}

// SetIncomeProfile updates the income profile, creating it on first use.
func SetIncomeProfile(db *gorm.DB, income IncomeProfile) (IncomeProfile, error) {
	return setSingleton(db, income)
}

// SetFlexibleSpending updates the flexible spending caps, creating them
// on first use.
func SetFlexibleSpending(db *gorm.DB, flexible FlexibleSpending) (FlexibleSpending, error) {
	return setSingleton(db, flexible)
}

// SetSavingsGoal updates the savings goal, creating it on first use.
func SetSavingsGoal(db *gorm.DB, savings SavingsGoal) (SavingsGoal, error) {
	return setSingleton(db, savings)
}

// SetSettings updates the settings, creating them on first use.
func SetSettings(db *gorm.DB, settings Settings) (Settings, error) {
	return setSingleton(db, settings)
}

// setSingleton persists a singleton record. The incoming record always
// replaces the stored one completely, only the ID and creation time
// survive.
func setSingleton[T any](db *gorm.DB, record T) (T, error) {
	var existing T

	err := db.First(&existing).Error
	if err != nil {
		if !errors.Is(err, ErrResourceNotFound) {
			var zero T
			return zero, err
		}

		err = db.Create(&record).Error
		if err != nil {
			var zero T
			return zero, err
		}

		return record, nil
	}

	err = db.Model(&existing).Select("*").Omit("id", "created_at").Updates(&record).Error
	if err != nil {
		var zero T
		return zero, err
	}

	// Reread so that callers get the stored state including all values
	// the save hooks have normalized
	err = db.First(&existing).Error
	if err != nil {
		var zero T
		return zero, err
	}

	return existing, nil
}

// ReplaceFixedExpenses replaces the full list of fixed expenses.
func ReplaceFixedExpenses(db *gorm.DB, expenses []FixedExpense) ([]FixedExpense, error) {
	return replaceAll(db, expenses)
}

// ReplaceSubscriptions replaces the full list of subscriptions.
func ReplaceSubscriptions(db *gorm.DB, subscriptions []Subscription) ([]Subscription, error) {
	return replaceAll(db, subscriptions)
}

// ReplaceDebts replaces the full list of debts.
func ReplaceDebts(db *gorm.DB, debts []Debt) ([]Debt, error) {
	return replaceAll(db, debts)
}

// replaceAll deletes all records of the list type and creates the new
// ones in a single transaction. Updating single list entries is not
// supported, clients always send the full list.
func replaceAll[T any](db *gorm.DB, records []T) ([]T, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var record T
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&record).Error
		if err != nil {
			return err
		}

		for i := range records {
			err = tx.Create(&records[i]).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteAll removes every record of the plan.
func DeleteAll(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		for _, record := range []any{
			&IncomeProfile{}, &FixedExpense{}, &Subscription{},
			&FlexibleSpending{}, &SavingsGoal{}, &Debt{}, &Settings{},
		} {
			err := session.Delete(record).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
