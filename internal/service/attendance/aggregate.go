package attendance

import (
	"math"
	"time"

	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/attendance"
)

// NewPresenceSet collapses the records' punch-in days into a set of distinct
// calendar days in loc. Multiple sessions on one day count once.
func NewPresenceSet(records []attendance.PunchRecord, loc *time.Location) attendance.PresenceSet {
	set := make(attendance.PresenceSet, len(records))
	for _, r := range records {
		set[attendance.DayOf(r.InTime, loc)] = struct{}{}
	}
	return set
}

// Aggregate derives the period totals from the records in scope. Open records
// (nil duration) contribute no time. Fractional hours are dropped, not
// rounded; the rate is rounded to the nearest whole percent, with a zero
// guard when the denominator grants no eligible days.
func Aggregate(records []attendance.PunchRecord, set attendance.PresenceSet, denominator int) attendance.AggregateStats {
	var totalSeconds int
	for _, r := range records {
		if r.DurationSeconds != nil {
			totalSeconds += *r.DurationSeconds
		}
	}

	stats := attendance.AggregateStats{
		PresentDays: len(set),
		TotalHours:  totalSeconds / 3600,
	}

	if denominator > 0 {
		stats.AttendanceRatePercent = int(math.Round(float64(stats.PresentDays) / float64(denominator) * 100))
	}

	return stats
}
