package payroll

import "errors"

var (
	ErrCalculationNotFound = errors.New("pay calculation not found")
	ErrInvalidRate         = errors.New("hourly rate must be positive")
	ErrNegativeInput       = errors.New("hour and mile fields must be non-negative")
	ErrNothingToPay        = errors.New("punch has no clock times and no non-worked hours")
	ErrMalformedClock      = errors.New("clock time is not a valid HH:MM value")
)
