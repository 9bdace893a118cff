package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budgetpilot/backend/internal/controllers/v1"
	"github.com/budgetpilot/backend/internal/types"
	"github.com/budgetpilot/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPlanEmpty() {
	t := suite.T()

	r := test.Request(t, http.MethodGet, "http://example.com/v1/plan", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.PlanResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)

	assert.Nil(t, response.Data.Income)
	assert.Empty(t, response.Data.FixedExpenses)
	assert.Empty(t, response.Data.Subscriptions)
	assert.Empty(t, response.Data.Debts)
	assert.False(t, response.Data.Savings.Enabled)
}

func (suite *TestSuiteStandard) TestPlanRoundtrip() {
	t := suite.T()

	updateTestIncome(t, v1.IncomeEditable{
		PayFrequency: "biweekly",
		NetPayAmount: decimal.NewFromInt(1500),
		PayDays:      []int{1, 15},
	})
	updateTestFixedExpenses(t, []v1.FixedExpenseEditable{
		{Name: "Rent", AmountMonthly: decimal.NewFromInt(1200), Enabled: true},
	})
	updateTestDebts(t, []v1.DebtEditable{
		{Type: "creditCard", Balance: decimal.NewFromInt(2400), MinPaymentMonthly: decimal.NewFromInt(50), PayoffGoal: "12mo"},
	})

	r := test.Request(t, http.MethodGet, "http://example.com/v1/plan", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.PlanResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)

	require.NotNil(t, response.Data.Income)
	assert.Equal(t, "biweekly", response.Data.Income.PayFrequency)
	assert.Equal(t, []int{1, 15}, response.Data.Income.PayDays)
	require.Len(t, response.Data.FixedExpenses, 1)
	assert.Equal(t, "Rent", response.Data.FixedExpenses[0].Name)
	require.Len(t, response.Data.Debts, 1)
	assert.Equal(t, "12mo", response.Data.Debts[0].PayoffGoal)
}

func (suite *TestSuiteStandard) TestPlanDeleteNeedsConfirmation() {
	t := suite.T()
	updateTestIncome(t, v1.IncomeEditable{PayFrequency: "monthly", NetPayAmount: decimal.NewFromInt(3000)})

	r := test.Request(t, http.MethodDelete, "http://example.com/v1/plan", "")
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

	r = test.Request(t, http.MethodDelete, "http://example.com/v1/plan?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)

	r = test.Request(t, http.MethodGet, "http://example.com/v1/plan/income", "")
	test.AssertHTTPStatus(t, &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestIncomeNotConfigured() {
	t := suite.T()

	r := test.Request(t, http.MethodGet, "http://example.com/v1/plan/income", "")
	test.AssertHTTPStatus(t, &r, http.StatusNotFound)

	var response v1.IncomeResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Error)
	assert.Contains(t, *response.Error, "there is no income profile")
}

func (suite *TestSuiteStandard) TestIncomeUpdateKeepsID() {
	t := suite.T()

	first := updateTestIncome(t, v1.IncomeEditable{PayFrequency: "monthly", NetPayAmount: decimal.NewFromInt(3000)})
	second := updateTestIncome(t, v1.IncomeEditable{PayFrequency: "weekly", NetPayAmount: decimal.NewFromInt(800)})

	require.NotNil(t, first.Data)
	require.NotNil(t, second.Data)
	assert.Equal(t, first.Data.ID, second.Data.ID)
	assert.Equal(t, "weekly", second.Data.PayFrequency)
}

func (suite *TestSuiteStandard) TestIncomeValidation() {
	t := suite.T()

	tests := []struct {
		name     string
		editable v1.IncomeEditable
		contains string
	}{
		{
			"invalid frequency",
			v1.IncomeEditable{PayFrequency: "daily", NetPayAmount: decimal.NewFromInt(100)},
			"pay frequency",
		},
		{
			"zero net pay",
			v1.IncomeEditable{PayFrequency: "monthly"},
			"net pay amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := updateTestIncome(t, tt.editable, http.StatusBadRequest)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.contains)
		})
	}
}

func (suite *TestSuiteStandard) TestFlexibleCapsDefault() {
	t := suite.T()

	r := test.Request(t, http.MethodGet, "http://example.com/v1/plan/flexible-caps", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.FlexibleCapsResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)
	assert.True(t, response.Data.EatingOut.IsZero())
}

func (suite *TestSuiteStandard) TestSavingsRoundtrip() {
	t := suite.T()

	r := test.Request(t, http.MethodPut, "http://example.com/v1/plan/savings", v1.SavingsEditable{
		Enabled:   true,
		Mode:      "fixedAmount",
		Value:     decimal.NewFromInt(250),
		GoalLabel: "Emergency fund",
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	r = test.Request(t, http.MethodGet, "http://example.com/v1/plan/savings", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.SavingsResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, "fixedAmount", response.Data.Mode)
	assert.Equal(t, "Emergency fund", response.Data.GoalLabel)
	assert.True(t, response.Data.Value.Equal(decimal.NewFromInt(250)))
}

func (suite *TestSuiteStandard) TestSavingsValidation() {
	t := suite.T()

	r := test.Request(t, http.MethodPut, "http://example.com/v1/plan/savings", v1.SavingsEditable{
		Enabled: true,
		Mode:    "percent",
		Value:   decimal.NewFromInt(80),
	})
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

	var response v1.SavingsResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Error)
	assert.Contains(t, *response.Error, "between 0 and 50")
}

func (suite *TestSuiteStandard) TestSettingsCurrency() {
	t := suite.T()

	r := test.Request(t, http.MethodPut, "http://example.com/v1/plan/settings", v1.SettingsEditable{Currency: "NOPE"})
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

	r = test.Request(t, http.MethodPut, "http://example.com/v1/plan/settings", v1.SettingsEditable{
		Currency:   "usd",
		BalanceNow: decimal.NewFromInt(1500),
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, "USD", response.Data.Currency)
}

func (suite *TestSuiteStandard) TestDebtCustomDateNeedsDate() {
	t := suite.T()

	response := updateTestDebts(t, []v1.DebtEditable{
		{Type: "loan", Balance: decimal.NewFromInt(1000), PayoffGoal: "customDate"},
	}, http.StatusBadRequest)
	require.NotNil(t, response.Error)
	assert.Contains(t, *response.Error, "target date")

	updateTestDebts(t, []v1.DebtEditable{
		{Type: "loan", Balance: decimal.NewFromInt(1000), PayoffGoal: "customDate", PayoffGoalDate: types.NewDate(2027, 3, 1)},
	})
}

func (suite *TestSuiteStandard) TestPlanOptions() {
	t := suite.T()

	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/plan", "GET, DELETE"},
		{"/v1/plan/income", "GET, PUT"},
		{"/v1/plan/flexible-caps", "GET, PUT"},
		{"/v1/plan/savings", "GET, PUT"},
		{"/v1/plan/settings", "GET, PUT"},
		{"/v1/plan/fixed-expenses", "GET, PUT"},
		{"/v1/plan/subscriptions", "GET, PUT"},
		{"/v1/plan/debts", "GET, PUT"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
