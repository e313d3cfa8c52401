package attendance

// ========================================
// ATTENDANCE DTOs
// ========================================

type PunchRecordResponse struct {
	ID              string  `json:"id"`
	InTime          string  `json:"in_time"`
	OutTime         *string `json:"out_time,omitempty"`
	DurationSeconds *int    `json:"duration_seconds,omitempty"`
}

type PunchResponse struct {
	Punched bool                 `json:"punched"`
	Record  *PunchRecordResponse `json:"record,omitempty"`
}

// AggregateStats are the derived period totals rendered above the calendars.
type AggregateStats struct {
	PresentDays           int `json:"present_days"`
	TotalHours            int `json:"total_hours"`
	AttendanceRatePercent int `json:"attendance_rate_percent"`
}

type CalendarDay struct {
	Day   int           `json:"day"`
	Level PresenceLevel `json:"level"`
}

// MonthGrid is one month of the year view. Offset is the Monday-first
// weekday index of day 1, so the client can pad the leading cells.
type MonthGrid struct {
	MonthName  string        `json:"month_name"`
	MonthIndex int           `json:"month_index"`
	Offset     int           `json:"offset"`
	Days       []CalendarDay `json:"days"`
}

type WeekDay struct {
	Date    string        `json:"date"`
	DayName string        `json:"day_name"`
	Level   PresenceLevel `json:"level"`
}

type DashboardResponse struct {
	Year          int                   `json:"year"`
	Stats         AggregateStats        `json:"stats"`
	Calendar      []MonthGrid           `json:"calendar"`
	Week          []WeekDay             `json:"week"`
	RecentRecords []PunchRecordResponse `json:"recent_records"`
}

type MonthDetailsResponse struct {
	Year    int                   `json:"year"`
	Month   int                   `json:"month"`
	Stats   AggregateStats        `json:"stats"`
	Records []PunchRecordResponse `json:"records"`
}

type WeekDetailsResponse struct {
	StartDate string                `json:"start_date"`
	EndDate   string                `json:"end_date"`
	Days      []WeekDay             `json:"days"`
	Records   []PunchRecordResponse `json:"records"`
}

// FeedItem is the raw-record shape consumed by the client-side duration
// chart. A pass-through of stored data, not a derived value.
type FeedItem struct {
	InTime          string `json:"in_time"`
	DurationSeconds *int   `json:"duration_seconds"`
}
