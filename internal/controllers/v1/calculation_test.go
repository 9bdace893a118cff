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

// setupCalculationPlan stores a plan that leaves room to spend: 5000
// income against 2000 rent, 300 in caps and a 10% savings goal.
func setupCalculationPlan(t *testing.T) {
	updateTestIncome(t, v1.IncomeEditable{
		PayFrequency: "monthly",
		NetPayAmount: decimal.NewFromInt(5000),
		NextPayDate:  types.NewDate(2024, 6, 16),
	})

	updateTestFixedExpenses(t, []v1.FixedExpenseEditable{
		{Name: "Rent", AmountMonthly: decimal.NewFromInt(2000), Enabled: true},
	})

	r := test.Request(t, http.MethodPut, "http://example.com/v1/plan/flexible-caps", v1.FlexibleCapsEditable{
		EatingOut: decimal.NewFromInt(200),
		Shopping:  decimal.NewFromInt(100),
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	r = test.Request(t, http.MethodPut, "http://example.com/v1/plan/savings", v1.SavingsEditable{
		Enabled: true,
		Mode:    "percent",
		Value:   decimal.NewFromInt(10),
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCalculation() {
	t := suite.T()
	setupCalculationPlan(t)

	r := test.Request(t, http.MethodPost, "http://example.com/v1/calculation", `{"today": "2024-06-01"}`)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.CalculationResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)

	result := response.Data
	assert.True(t, result.Feasible)
	assert.Equal(t, 15, result.DaysUntilPayday)
	assert.True(t, result.NextPayDate.Equal(types.NewDate(2024, 6, 16)))
	assert.True(t, result.Totals.Essential.Equal(decimal.NewFromInt(2500)), "essential is %s", result.Totals.Essential)
	assert.True(t, result.SafeToSpendPerDay.Equal(decimal.RequireFromString("82.13")), "per day is %s", result.SafeToSpendPerDay)
	assert.True(t, result.SafeToSpendUntilPayday.Equal(decimal.RequireFromString("1231.93")), "until payday is %s", result.SafeToSpendUntilPayday)
	assert.NotEmpty(t, result.Suggestions)
}

func (suite *TestSuiteStandard) TestCalculationDefaultsToToday() {
	t := suite.T()
	setupCalculationPlan(t)

	// An empty body is allowed, the calculation then runs for the
	// current day
	r := test.Request(t, http.MethodPost, "http://example.com/v1/calculation", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.CalculationResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)
	assert.True(t, response.Data.DaysUntilPayday >= 1)
}

func (suite *TestSuiteStandard) TestCalculationInlinePlan() {
	t := suite.T()

	// Nothing is stored, the whole plan travels with the request
	today := types.NewDate(2024, 6, 1)
	r := test.Request(t, http.MethodPost, "http://example.com/v1/calculation", v1.CalculationRequest{
		Today: &today,
		Plan: &v1.PlanEditable{
			Income: &v1.IncomeEditable{
				PayFrequency: "monthly",
				NetPayAmount: decimal.NewFromInt(5000),
				NextPayDate:  types.NewDate(2024, 6, 16),
			},
			FixedExpenses: []v1.FixedExpenseEditable{
				{Name: "Rent", AmountMonthly: decimal.NewFromInt(2000), Enabled: true},
			},
		},
	})
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.CalculationResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)
	assert.True(t, response.Data.Feasible)
	assert.True(t, response.Data.Totals.Essential.Equal(decimal.NewFromInt(2000)), "essential is %s", response.Data.Totals.Essential)

	// The inline plan is never persisted
	r = test.Request(t, http.MethodGet, "http://example.com/v1/plan/income", "")
	test.AssertHTTPStatus(t, &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCalculationNoIncome() {
	t := suite.T()

	r := test.Request(t, http.MethodPost, "http://example.com/v1/calculation", "")
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

	var response v1.CalculationResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Error)
	assert.Contains(t, *response.Error, "no income profile")
}

func (suite *TestSuiteStandard) TestCalculationInvalidBody() {
	t := suite.T()
	setupCalculationPlan(t)

	r := test.Request(t, http.MethodPost, "http://example.com/v1/calculation", `{"today": "not-a-date"}`)
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCalculationDBClosed() {
	t := suite.T()
	suite.CloseDB()

	r := test.Request(t, http.MethodPost, "http://example.com/v1/calculation", "")
	test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestCalculationOptions() {
	t := suite.T()

	r := test.Request(t, http.MethodOptions, "http://example.com/v1/calculation", "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)
	assert.Equal(t, "POST", r.Header().Get("allow"))
}
