package v1

import (
	"net/http"

	"github.com/budgetpilot/backend/internal/httputil"
	"github.com/budgetpilot/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan/fixed-expenses [options]
func OptionsFixedExpenses(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get fixed expenses
// @Description	Returns the list of fixed expenses
// @Tags			Plan
// @Produce		json
// @Success		200		{object}	FixedExpenseListResponse
// @Failure		500		{object}	FixedExpenseListResponse
// @Param			name	query		string	false	"Filter by name, glob patterns are supported"
// @Router			/v1/plan/fixed-expenses [get]
func GetFixedExpenses(c *gin.Context) {
	var expenses []models.FixedExpense
	err := models.DB.Order("created_at ASC").Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedExpenseListResponse{
			Error: &e,
		})
		return
	}

	pattern := c.Query("name")

	data := make([]FixedExpense, 0, len(expenses))
	for _, expense := range expenses {
		if pattern != "" && !glob.Glob(pattern, expense.Name) {
			continue
		}
		data = append(data, newFixedExpense(expense))
	}

	c.JSON(http.StatusOK, FixedExpenseListResponse{Data: data})
}

// @Summary		Update fixed expenses
// @Description	Replaces the full list of fixed expenses
// @Tags			Plan
// @Accept			json
// @Produce		json
// @Success		200			{object}	FixedExpenseListResponse
// @Failure		400			{object}	FixedExpenseListResponse
// @Failure		500			{object}	FixedExpenseListResponse
// @Param			expenses	body		[]FixedExpenseEditable	true	"Fixed expenses"
// @Router			/v1/plan/fixed-expenses [put]
func UpdateFixedExpenses(c *gin.Context) {
	var editables []FixedExpenseEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedExpenseListResponse{
			Error: &e,
		})
		return
	}

	records := make([]models.FixedExpense, 0, len(editables))
	for _, editable := range editables {
		records = append(records, editable.model())
	}

	records, err = models.ReplaceFixedExpenses(models.DB, records)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedExpenseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]FixedExpense, 0, len(records))
	for _, record := range records {
		data = append(data, newFixedExpense(record))
	}

	c.JSON(http.StatusOK, FixedExpenseListResponse{Data: data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan/subscriptions [options]
func OptionsSubscriptions(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get subscriptions
// @Description	Returns the list of subscriptions
// @Tags			Plan
// @Produce		json
// @Success		200		{object}	SubscriptionListResponse
// @Failure		500		{object}	SubscriptionListResponse
// @Param			name	query		string	false	"Filter by name, glob patterns are supported"
// @Router			/v1/plan/subscriptions [get]
func GetSubscriptions(c *gin.Context) {
	var subscriptions []models.Subscription
	err := models.DB.Order("created_at ASC").Find(&subscriptions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &e,
		})
		return
	}

	pattern := c.Query("name")

	data := make([]Subscription, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		if pattern != "" && !glob.Glob(pattern, subscription.Name) {
			continue
		}
		data = append(data, newSubscription(subscription))
	}

	c.JSON(http.StatusOK, SubscriptionListResponse{Data: data})
}

// @Summary		Update subscriptions
// @Description	Replaces the full list of subscriptions
// @Tags			Plan
// @Accept			json
// @Produce		json
// @Success		200				{object}	SubscriptionListResponse
// @Failure		400				{object}	SubscriptionListResponse
// @Failure		500				{object}	SubscriptionListResponse
// @Param			subscriptions	body		[]SubscriptionEditable	true	"Subscriptions"
// @Router			/v1/plan/subscriptions [put]
func UpdateSubscriptions(c *gin.Context) {
	var editables []SubscriptionEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &e,
		})
		return
	}

	records := make([]models.Subscription, 0, len(editables))
	for _, editable := range editables {
		records = append(records, editable.model())
	}

	records, err = models.ReplaceSubscriptions(models.DB, records)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Subscription, 0, len(records))
	for _, record := range records {
		data = append(data, newSubscription(record))
	}

	c.JSON(http.StatusOK, SubscriptionListResponse{Data: data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan/debts [options]
func OptionsDebts(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get debts
// @Description	Returns the list of debts
// @Tags			Plan
// @Produce		json
// @Success		200		{object}	DebtListResponse
// @Failure		500		{object}	DebtListResponse
// @Param			type	query		string	false	"Filter by type, glob patterns are supported"
// @Router			/v1/plan/debts [get]
func GetDebts(c *gin.Context) {
	var debts []models.Debt
	err := models.DB.Order("created_at ASC").Find(&debts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &e,
		})
		return
	}

	pattern := c.Query("type")

	data := make([]Debt, 0, len(debts))
	for _, debt := range debts {
		if pattern != "" && !glob.Glob(pattern, debt.Type) {
			continue
		}
		data = append(data, newDebt(debt))
	}

	c.JSON(http.StatusOK, DebtListResponse{Data: data})
}

// @Summary		Update debts
// @Description	Replaces the full list of debts
// @Tags			Plan
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtListResponse
// @Failure		400		{object}	DebtListResponse
// @Failure		500		{object}	DebtListResponse
// @Param			debts	body		[]DebtEditable	true	"Debts"
// @Router			/v1/plan/debts [put]
func UpdateDebts(c *gin.Context) {
	var editables []DebtEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &e,
		})
		return
	}

	records := make([]models.Debt, 0, len(editables))
	for _, editable := range editables {
		records = append(records, editable.model())
	}

	records, err = models.ReplaceDebts(models.DB, records)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Debt, 0, len(records))
	for _, record := range records {
		data = append(data, newDebt(record))
	}

	c.JSON(http.StatusOK, DebtListResponse{Data: data})
}
