package attendance

import (
	"context"
	"time"
)

// PunchRecordRepository defines data access for punch records. The store is
// the only collaborator with durable state; the aggregation code above it is
// pure over the records it returns.
type PunchRecordRepository interface {
	// Create opens a new session for userID. The insert is conditional: it
	// does nothing and reports ErrSessionAlreadyOpen when an open record for
	// userID already exists, so two concurrent punch-ins cannot both commit.
	Create(ctx context.Context, userID string, inTime time.Time) (PunchRecord, error)

	// GetOpenRecord returns the open session for userID, tie-broken by most
	// recent in_time. Returns pgx.ErrNoRows when there is none.
	GetOpenRecord(ctx context.Context, userID string) (PunchRecord, error)

	// Close sets out_time and duration_seconds on an open record. The update
	// only matches rows whose out_time is still NULL, so a closed record is
	// never mutated again.
	Close(ctx context.Context, id string, outTime time.Time, durationSeconds int) error

	// ListInRange returns records with in_time in [start, end] inclusive,
	// ascending by in_time.
	ListInRange(ctx context.Context, userID string, start, end time.Time) ([]PunchRecord, error)

	// ListAll returns every record for userID ascending by in_time. Used by
	// the charting data feed.
	ListAll(ctx context.Context, userID string) ([]PunchRecord, error)
}
