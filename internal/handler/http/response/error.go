package response

import (
	"errors"
	"net/http"

	"github.com/shiftwise/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftwise/timeclock-backend-go/internal/domain/setting"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNameExists):
		Conflict(w, "Employee name already exists in this company")
	case errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, "Employee is already inactive")
	case errors.Is(err, employee.ErrInvalidHourlyRate):
		BadRequest(w, "Hourly rate must be positive", nil)

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, punch.ErrPunchAlreadyExists):
		Conflict(w, "Punch already exists for this employee and date")
	case errors.Is(err, punch.ErrInvalidStatus):
		BadRequest(w, "Invalid punch status", nil)
	case errors.Is(err, punch.ErrEmptyBatch):
		BadRequest(w, "Batch contains no punches", nil)
	case errors.Is(err, punch.ErrBatchOutOfRange):
		BadRequest(w, "Batch punch date outside the replacement range", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrCalculationNotFound):
		NotFound(w, "Pay calculation not found")
	case errors.Is(err, payroll.ErrInvalidRate):
		BadRequest(w, "Hourly rate must be positive", nil)
	case errors.Is(err, payroll.ErrNegativeInput):
		BadRequest(w, "Hour and mile fields must be non-negative", nil)
	case errors.Is(err, payroll.ErrNothingToPay):
		BadRequest(w, "Punch has no clock times and no non-worked hours", nil)
	case errors.Is(err, payroll.ErrMalformedClock):
		BadRequest(w, "Clock time is not a valid HH:MM value", nil)

	// Settings domain errors
	case errors.Is(err, setting.ErrSettingsNotFound):
		NotFound(w, "Company settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
