package v1

import (
	"errors"
	"net/http"

	"github.com/budgetpilot/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the request body must not be empty"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
