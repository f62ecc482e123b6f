package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Availability errors
	ErrInvalidDate = errors.New("invalid date")

	// Booking errors
	ErrInvalidTime      = errors.New("invalid time of day")
	ErrPastDate         = errors.New("date is in the past")
	ErrSlotTaken        = errors.New("time slot already taken")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrRefundFailed     = errors.New("refund failed")

	// Catalog errors
	ErrServiceNotFound = errors.New("service not found")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
