package tools

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
)

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

var (
	errIDNotSet       = errors.New("the id parameter must be a positive integer")
	errNoUpdateFields = errors.New("at least one field to update must be set")
	errDateOrder      = errors.New("start_date must not be after end_date")
	errPeriodInvalid  = errors.New("period must be one of: week, month, all")
	errLimitRange     = errors.New("limit must be between 1 and 500")
	errCountRange     = errors.New("n must be between 1 and 100")
)

// parseDate parses a date parameter, naming the parameter in the error
// so that agents can repair the call.
func parseDate(value, parameter string) (types.Date, error) {
	date, err := types.ParseDate(value)
	if err != nil {
		return types.Date{}, fmt.Errorf("the %s parameter must be a date in YYYY-MM-DD format", parameter)
	}

	return date, nil
}
