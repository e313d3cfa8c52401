package attendance

import (
	"time"
)

// PunchRecord is one tracked work session. A record with a nil OutTime is an
// open session; at most one open session exists per user at any time.
type PunchRecord struct {
	ID              string
	UserID          string
	InTime          time.Time
	OutTime         *time.Time
	DurationSeconds *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsOpen reports whether the session has not been punched out yet.
func (r *PunchRecord) IsOpen() bool {
	return r.OutTime == nil
}
