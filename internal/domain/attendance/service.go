package attendance

import (
	"context"
)

// AttendanceService defines business logic for punch tracking and the
// derived calendar views. The user is taken from the JWT claims in ctx.
type AttendanceService interface {
	// PunchIn opens a new session. No-op when one is already open.
	PunchIn(ctx context.Context) (PunchResponse, error)

	// PunchOut closes the most recently opened session. No-op when none is open.
	PunchOut(ctx context.Context) (PunchResponse, error)

	// GetDashboard returns the year stats, 12-month calendar, trailing-week
	// strip and the most recent records. Year zero means the current year
	// on the service clock.
	GetDashboard(ctx context.Context, year int) (DashboardResponse, error)

	// GetMonthDetails returns the record list and stats for one month.
	// Year zero means the current year on the service clock.
	GetMonthDetails(ctx context.Context, year, month int) (MonthDetailsResponse, error)

	// GetWeekDetails returns the trailing 7-day window.
	GetWeekDetails(ctx context.Context) (WeekDetailsResponse, error)

	// GetRecordFeed returns the raw record feed for client-side charting.
	GetRecordFeed(ctx context.Context) ([]FeedItem, error)
}
