package attendance

import "errors"

// Attendance domain errors
var (
	// ErrSessionAlreadyOpen is reported by the conditional punch-in insert.
	// The service treats it as a no-op, not a failure.
	ErrSessionAlreadyOpen = errors.New("an open session already exists")

	ErrRecordNotFound = errors.New("punch record not found")
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")
	ErrInvalidYear    = errors.New("year is out of range")
)
