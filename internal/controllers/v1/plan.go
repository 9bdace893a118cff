package v1

import (
	"net/http"

	"github.com/budgetpilot/backend/internal/httputil"
	"github.com/budgetpilot/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterPlanRoutes registers the routes for the plan with the
// RouterGroup that is passed.
func RegisterPlanRoutes(r *gin.RouterGroup) {
	// Full plan
	{
		r.OPTIONS("", OptionsPlan)
		r.GET("", GetPlan)
		r.DELETE("", DeletePlan)
	}

	// Singleton sections
	{
		r.OPTIONS("/income", OptionsIncome)
		r.GET("/income", GetIncome)
		r.PUT("/income", UpdateIncome)

		r.OPTIONS("/flexible-caps", OptionsFlexibleCaps)
		r.GET("/flexible-caps", GetFlexibleCaps)
		r.PUT("/flexible-caps", UpdateFlexibleCaps)

		r.OPTIONS("/savings", OptionsSavings)
		r.GET("/savings", GetSavings)
		r.PUT("/savings", UpdateSavings)

		r.OPTIONS("/settings", OptionsSettings)
		r.GET("/settings", GetSettings)
		r.PUT("/settings", UpdateSettings)
	}

	// List sections, updated with replace-all semantics
	{
		r.OPTIONS("/fixed-expenses", OptionsFixedExpenses)
		r.GET("/fixed-expenses", GetFixedExpenses)
		r.PUT("/fixed-expenses", UpdateFixedExpenses)

		r.OPTIONS("/subscriptions", OptionsSubscriptions)
		r.GET("/subscriptions", GetSubscriptions)
		r.PUT("/subscriptions", UpdateSubscriptions)

		r.OPTIONS("/debts", OptionsDebts)
		r.GET("/debts", GetDebts)
		r.PUT("/debts", UpdateDebts)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan [options]
func OptionsPlan(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Get plan
// @Description	Returns the full plan with all its sections
// @Tags			Plan
// @Produce		json
// @Success		200	{object}	PlanResponse
// @Failure		500	{object}	PlanResponse
// @Router			/v1/plan [get]
func GetPlan(c *gin.Context) {
	plan, err := models.LoadPlan(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &e,
		})
		return
	}

	data := newPlan(plan)
	c.JSON(http.StatusOK, PlanResponse{Data: &data})
}

// @Summary		Delete plan
// @Description	Permanently deletes all records of the plan
// @Tags			Plan
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete the plan. Must have the value 'yes-please-delete-everything'"
// @Router			/v1/plan [delete]
func DeletePlan(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	err = models.DeleteAll(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
