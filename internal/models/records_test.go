package models_test

import (
	"testing"

	"github.com/budgetpilot/backend/internal/models"
	"github.com/budgetpilot/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestIncomeProfileValidation() {
	tests := []struct {
		name   string
		income models.IncomeProfile
		err    error
	}{
		{
			"invalid frequency",
			models.IncomeProfile{PayFrequency: "daily", NetPayAmount: decimal.NewFromInt(100)},
			models.ErrPayFrequencyInvalid,
		},
		{
			"zero net pay",
			models.IncomeProfile{PayFrequency: "monthly"},
			models.ErrNetPayNotPositive,
		},
		{
			"negative net pay",
			models.IncomeProfile{PayFrequency: "monthly", NetPayAmount: decimal.NewFromInt(-100)},
			models.ErrNetPayNotPositive,
		},
		{
			"negative irregular average",
			models.IncomeProfile{PayFrequency: "monthly", NetPayAmount: decimal.NewFromInt(100), IrregularMonthlyAvg: decimal.NewFromInt(-1)},
			models.ErrAmountNegative,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.SetIncomeProfile(models.DB, tt.income)
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestFixedExpenseValidation() {
	err := models.DB.Create(&models.FixedExpense{Name: "Broken", AmountMonthly: decimal.NewFromInt(-1)}).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)
}

func (suite *TestSuiteStandard) TestNameTrimmed() {
	expense := suite.createTestFixedExpense(models.FixedExpense{Name: "  Rent ", AmountMonthly: decimal.NewFromInt(1000), Enabled: true})
	suite.Assert().Equal("Rent", expense.Name)
}

func (suite *TestSuiteStandard) TestSavingsGoalValidation() {
	tests := []struct {
		name    string
		savings models.SavingsGoal
		err     error
	}{
		{
			"invalid mode",
			models.SavingsGoal{Enabled: true, Mode: "weekly"},
			models.ErrSavingsModeInvalid,
		},
		{
			"percent above range",
			models.SavingsGoal{Enabled: true, Mode: "percent", Value: decimal.NewFromInt(51)},
			models.ErrSavingsValueInvalid,
		},
		{
			"negative percent",
			models.SavingsGoal{Enabled: true, Mode: "percent", Value: decimal.NewFromInt(-1)},
			models.ErrSavingsValueInvalid,
		},
		{
			"negative fixed amount",
			models.SavingsGoal{Enabled: true, Mode: "fixedAmount", Value: decimal.NewFromInt(-1)},
			models.ErrAmountNegative,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.SetSavingsGoal(models.DB, tt.savings)
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestSavingsGoalDisabledNotValidated() {
	// The mode of a disabled goal is not checked so that the record can
	// keep its configuration while paused.
	_, err := models.SetSavingsGoal(models.DB, models.SavingsGoal{Enabled: false, Mode: ""})
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestDebtValidation() {
	negativeAPR := decimal.NewFromInt(-5)

	tests := []struct {
		name string
		debt models.Debt
		err  error
	}{
		{
			"negative balance",
			models.Debt{Type: "loan", Balance: decimal.NewFromInt(-1)},
			models.ErrAmountNegative,
		},
		{
			"negative APR",
			models.Debt{Type: "loan", Balance: decimal.NewFromInt(100), APR: &negativeAPR},
			models.ErrAmountNegative,
		},
		{
			"invalid payoff goal",
			models.Debt{Type: "loan", Balance: decimal.NewFromInt(100), PayoffGoal: "someday"},
			models.ErrPayoffGoalInvalid,
		},
		{
			"custom date goal without date",
			models.Debt{Type: "loan", Balance: decimal.NewFromInt(100), PayoffGoal: "customDate"},
			models.ErrPayoffDateMissing,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.debt).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestDebtCustomDateRoundtrip() {
	debt := suite.createTestDebt(models.Debt{
		Type:              "loan",
		Balance:           decimal.NewFromInt(1200),
		MinPaymentMonthly: decimal.NewFromInt(50),
		PayoffGoal:        "customDate",
		PayoffGoalDate:    types.NewDate(2027, 3, 1),
	})

	var reread models.Debt
	err := models.DB.First(&reread, debt.ID).Error
	suite.Require().Nil(err)
	suite.Assert().True(reread.PayoffGoalDate.Equal(types.NewDate(2027, 3, 1)))
}

func (suite *TestSuiteStandard) TestSettingsValidation() {
	_, err := models.SetSettings(models.DB, models.Settings{Currency: "NOPE"})
	suite.Assert().ErrorIs(err, models.ErrCurrencyCodeInvalid)

	settings, err := models.SetSettings(models.DB, models.Settings{Currency: " usd "})
	suite.Require().Nil(err)
	suite.Assert().Equal("USD", settings.Currency)

	settings, err = models.SetSettings(models.DB, models.Settings{})
	suite.Require().Nil(err)
	suite.Assert().Equal("EUR", settings.Currency)
}
