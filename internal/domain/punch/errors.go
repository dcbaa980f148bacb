package punch

import "errors"

var (
	ErrPunchNotFound      = errors.New("punch not found")
	ErrPunchAlreadyExists = errors.New("punch already exists for this employee and date")
	ErrInvalidStatus      = errors.New("invalid punch status")
	ErrEmptyBatch         = errors.New("batch contains no punches")
	ErrBatchOutOfRange    = errors.New("batch punch date outside the replacement range")
)
