package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budgetpilot/backend/internal/controllers/v1"
	"github.com/budgetpilot/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestFixedExpensesReplaceAll() {
	t := suite.T()

	updateTestFixedExpenses(t, []v1.FixedExpenseEditable{
		{Name: "Rent", AmountMonthly: decimal.NewFromInt(1200), Enabled: true},
		{Name: "Utilities", AmountMonthly: decimal.NewFromInt(150), Enabled: true},
	})

	// The next update replaces the whole list
	response := updateTestFixedExpenses(t, []v1.FixedExpenseEditable{
		{Name: "Rent", AmountMonthly: decimal.NewFromInt(1250), Enabled: true},
	})
	require.Len(t, response.Data, 1)

	r := test.Request(t, http.MethodGet, "http://example.com/v1/plan/fixed-expenses", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var list v1.FixedExpenseListResponse
	test.DecodeResponse(t, &r, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Rent", list.Data[0].Name)
	assert.True(t, list.Data[0].AmountMonthly.Equal(decimal.NewFromInt(1250)))
}

func (suite *TestSuiteStandard) TestFixedExpensesEmptyListAllowed() {
	t := suite.T()

	updateTestFixedExpenses(t, []v1.FixedExpenseEditable{
		{Name: "Rent", AmountMonthly: decimal.NewFromInt(1200), Enabled: true},
	})

	response := updateTestFixedExpenses(t, []v1.FixedExpenseEditable{})
	assert.Empty(t, response.Data)
}

func (suite *TestSuiteStandard) TestFixedExpensesGlobFilter() {
	t := suite.T()

	updateTestFixedExpenses(t, []v1.FixedExpenseEditable{
		{Name: "Rent", AmountMonthly: decimal.NewFromInt(1200), Enabled: true},
		{Name: "Car insurance", AmountMonthly: decimal.NewFromInt(80), Enabled: true},
		{Name: "Car loan", AmountMonthly: decimal.NewFromInt(220), Enabled: true},
	})

	tests := []struct {
		name    string
		pattern string
		matches int
	}{
		{"exact match", "Rent", 1},
		{"prefix glob", "Car*", 2},
		{"contains glob", "*loan*", 1},
		{"no match", "Netflix", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/plan/fixed-expenses?name="+tt.pattern, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.FixedExpenseListResponse
			test.DecodeResponse(t, &r, &list)
			assert.Len(t, list.Data, tt.matches)
		})
	}
}

func (suite *TestSuiteStandard) TestSubscriptionsValidation() {
	t := suite.T()

	response := updateTestSubscriptions(t, []v1.SubscriptionEditable{
		{Name: "Streaming", AmountMonthly: decimal.NewFromInt(-13)},
	}, http.StatusBadRequest)
	require.NotNil(t, response.Error)
	assert.Contains(t, *response.Error, "must not be negative")
}

func (suite *TestSuiteStandard) TestSubscriptionsReplaceRollsBack() {
	t := suite.T()

	updateTestSubscriptions(t, []v1.SubscriptionEditable{
		{Name: "Streaming", AmountMonthly: decimal.NewFromInt(13)},
	})

	// An invalid record anywhere in the list rolls back the whole update
	updateTestSubscriptions(t, []v1.SubscriptionEditable{
		{Name: "Music", AmountMonthly: decimal.NewFromInt(10)},
		{Name: "Broken", AmountMonthly: decimal.NewFromInt(-1)},
	}, http.StatusBadRequest)

	r := test.Request(t, http.MethodGet, "http://example.com/v1/plan/subscriptions", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var list v1.SubscriptionListResponse
	test.DecodeResponse(t, &r, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Streaming", list.Data[0].Name)
}

func (suite *TestSuiteStandard) TestDebtsTypeFilter() {
	t := suite.T()

	updateTestDebts(t, []v1.DebtEditable{
		{Type: "creditCard", Balance: decimal.NewFromInt(2400), MinPaymentMonthly: decimal.NewFromInt(50)},
		{Type: "studentLoan", Balance: decimal.NewFromInt(12000), MinPaymentMonthly: decimal.NewFromInt(120)},
	})

	r := test.Request(t, http.MethodGet, "http://example.com/v1/plan/debts?type=credit*", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var list v1.DebtListResponse
	test.DecodeResponse(t, &r, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "creditCard", list.Data[0].Type)
}

func (suite *TestSuiteStandard) TestListsDBClosed() {
	t := suite.T()
	suite.CloseDB()

	tests := []string{
		"/v1/plan/fixed-expenses",
		"/v1/plan/subscriptions",
		"/v1/plan/debts",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}
