package v1

import (
	"errors"
	"net/http"

	"github.com/budgetpilot/backend/internal/httputil"
	"github.com/budgetpilot/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan/income [options]
func OptionsIncome(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get income profile
// @Description	Returns the income profile
// @Tags			Plan
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Router			/v1/plan/income [get]
func GetIncome(c *gin.Context) {
	var income models.IncomeProfile
	err := models.DB.First(&income).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	data := newIncome(income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Update income profile
// @Description	Sets the income profile, creating it on first use
// @Tags			Plan
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		IncomeEditable	true	"Income profile"
// @Router			/v1/plan/income [put]
func UpdateIncome(c *gin.Context) {
	var editable IncomeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	income, err := models.SetIncomeProfile(models.DB, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &e,
		})
		return
	}

	data := newIncome(income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan/flexible-caps [options]
func OptionsFlexibleCaps(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get flexible spending caps
// @Description	Returns the flexible spending caps. Caps that have never been set are returned with zero amounts.
// @Tags			Plan
// @Produce		json
// @Success		200	{object}	FlexibleCapsResponse
// @Failure		500	{object}	FlexibleCapsResponse
// @Router			/v1/plan/flexible-caps [get]
func GetFlexibleCaps(c *gin.Context) {
	var flexible models.FlexibleSpending
	err := models.DB.First(&flexible).Error
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		e := err.Error()
		c.JSON(status(err), FlexibleCapsResponse{
			Error: &e,
		})
		return
	}

	data := newFlexibleCaps(flexible)
	c.JSON(http.StatusOK, FlexibleCapsResponse{Data: &data})
}

// @Summary		Update flexible spending caps
// @Description	Sets the flexible spending caps, creating them on first use
// @Tags			Plan
// @Accept			json
// @Produce		json
// @Success		200		{object}	FlexibleCapsResponse
// @Failure		400		{object}	FlexibleCapsResponse
// @Failure		500		{object}	FlexibleCapsResponse
// @Param			caps	body		FlexibleCapsEditable	true	"Flexible spending caps"
// @Router			/v1/plan/flexible-caps [put]
func UpdateFlexibleCaps(c *gin.Context) {
	var editable FlexibleCapsEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FlexibleCapsResponse{
			Error: &e,
		})
		return
	}

	flexible, err := models.SetFlexibleSpending(models.DB, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FlexibleCapsResponse{
			Error: &e,
		})
		return
	}

	data := newFlexibleCaps(flexible)
	c.JSON(http.StatusOK, FlexibleCapsResponse{Data: &data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan/savings [options]
func OptionsSavings(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get savings goal
// @Description	Returns the savings goal. A goal that has never been set is returned as disabled.
// @Tags			Plan
// @Produce		json
// @Success		200	{object}	SavingsResponse
// @Failure		500	{object}	SavingsResponse
// @Router			/v1/plan/savings [get]
func GetSavings(c *gin.Context) {
	var savings models.SavingsGoal
	err := models.DB.First(&savings).Error
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		e := err.Error()
		c.JSON(status(err), SavingsResponse{
			Error: &e,
		})
		return
	}

	data := newSavings(savings)
	c.JSON(http.StatusOK, SavingsResponse{Data: &data})
}

// @Summary		Update savings goal
// @Description	Sets the savings goal, creating it on first use
// @Tags			Plan
// @Accept			json
// @Produce		json
// @Success		200		{object}	SavingsResponse
// @Failure		400		{object}	SavingsResponse
// @Failure		500		{object}	SavingsResponse
// @Param			savings	body		SavingsEditable	true	"Savings goal"
// @Router			/v1/plan/savings [put]
func UpdateSavings(c *gin.Context) {
	var editable SavingsEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsResponse{
			Error: &e,
		})
		return
	}

	savings, err := models.SetSavingsGoal(models.DB, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingsResponse{
			Error: &e,
		})
		return
	}

	data := newSavings(savings)
	c.JSON(http.StatusOK, SavingsResponse{Data: &data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get settings
// @Description	Returns the plan-wide settings
// @Tags			Plan
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/plan/settings [get]
func GetSettings(c *gin.Context) {
	var settings models.Settings
	err := models.DB.First(&settings).Error
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	data := newSettings(settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}

// @Summary		Update settings
// @Description	Sets the plan-wide settings, creating them on first use
// @Tags			Plan
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/plan/settings [put]
func UpdateSettings(c *gin.Context) {
	var editable SettingsEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	settings, err := models.SetSettings(models.DB, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	data := newSettings(settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}
