package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/budgetpilot/backend/internal/engine"
	"github.com/budgetpilot/backend/internal/httputil"
	"github.com/budgetpilot/backend/internal/models"
	"github.com/budgetpilot/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterCalculationRoutes registers the routes for calculations with
// the RouterGroup that is passed.
func RegisterCalculationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCalculation)
	r.POST("", CreateCalculation)
}

// CalculationRequest are the parameters for a calculation.
type CalculationRequest struct {
	Today *types.Date   `json:"today" example:"2026-08-30"` // Reference day for the calculation, defaults to the current day
	Plan  *PlanEditable `json:"plan"`                       // Plan to calculate with. The stored plan is used when this is not set
}

type CalculationResponse struct {
	Data  *engine.Result `json:"data"`                                                 // The calculation result
	Error *string        `json:"error" example:"no income profile is configured"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calculation
// @Success		204
// @Router			/v1/calculation [options]
func OptionsCalculation(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Calculate the budget
// @Description	Runs a budget calculation. The plan can be passed inline for a stateless calculation, otherwise the stored plan is used. The result is derived data and never persisted.
// @Tags			Calculation
// @Accept			json
// @Produce		json
// @Success		200			{object}	CalculationResponse
// @Failure		400			{object}	CalculationResponse
// @Failure		500			{object}	CalculationResponse
// @Param			calculation	body		CalculationRequest	false	"Calculation parameters"
// @Router			/v1/calculation [post]
func CreateCalculation(c *gin.Context) {
	var request CalculationRequest

	// The request body is optional
	err := httputil.BindData(c, &request)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		e := err.Error()
		c.JSON(status(err), CalculationResponse{
			Error: &e,
		})
		return
	}

	var plan models.Plan
	if request.Plan != nil {
		plan = request.Plan.model()
	} else {
		plan, err = models.LoadPlan(models.DB)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), CalculationResponse{
				Error: &e,
			})
			return
		}
	}

	today := types.DateOf(time.Now().In(time.UTC))
	if request.Today != nil && !request.Today.IsZero() {
		today = *request.Today
	}

	result, err := engine.Calculate(plan.EngineInput(today))
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CalculationResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CalculationResponse{Data: result})
}
