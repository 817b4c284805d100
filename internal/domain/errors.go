package domain

import "errors"

var (
	// ErrNotFound covers missing flights, passengers, tickets and seat pools.
	ErrNotFound = errors.New("not found")

	ErrSeatNotAvailable       = errors.New("seat is not available")
	ErrSeatNotBooked          = errors.New("seat is not booked")
	ErrIneligibleForClass     = errors.New("passenger is not eligible for this class")
	ErrAlreadyInitialized     = errors.New("seat pools already initialized for flight")
	ErrReconfigurationBlocked = errors.New("reconfiguration blocked: flight has booked seats")
	ErrValidation             = errors.New("validation error")

	// ErrLockTimeout means the row lock on a seat pool could not be acquired
	// within the configured bound. The request may be retried by the caller.
	ErrLockTimeout = errors.New("seat pool lock timed out")
)
