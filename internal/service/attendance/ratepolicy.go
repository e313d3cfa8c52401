package attendance

import (
	"math"
	"time"
)

// WeekWindowDays is the fixed length of the trailing week view. The week view
// surfaces raw records only, no attendance rate, so no denominator function
// exists for it.
const WeekWindowDays = 7

// YearDenominator returns the number of calendar days elapsed since January 1
// of year through now inclusive. For a year that has not started yet the
// result is <= 0 and the aggregate rate guard yields 0.
func YearDenominator(year int, now time.Time) int {
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
	return int(math.Ceil(now.Sub(startOfYear).Hours()/24)) + 1
}

// MonthDenominator returns the eligible-day count for a month's attendance
// rate. Past months count every day, the current month counts only the days
// elapsed so far, and future months count zero so a rate is never inflated by
// days that have not occurred.
func MonthDenominator(year int, month time.Month, now time.Time) int {
	nowYear, nowMonth := now.Year(), now.Month()

	switch {
	case year < nowYear || (year == nowYear && month < nowMonth):
		return daysInMonth(year, month)
	case year == nowYear && month == nowMonth:
		return now.Day()
	default:
		return 0
	}
}

// daysInMonth returns the last day number of the month. Day zero of the next
// month normalizes to it.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
