package attendance

import (
	"time"

	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/attendance"
)

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// mondayFirstOffset converts a Go weekday (Sunday = 0) to the Monday-first
// column index used by the calendar grids.
func mondayFirstOffset(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// BuildYearCalendar produces the twelve month grids for the year view. Each
// grid carries its leading weekday offset and one entry per day tagged with
// the presence level from set. Only the leading offset is padded; there is no
// trailing padding.
func BuildYearCalendar(year int, set attendance.PresenceSet) []attendance.MonthGrid {
	grids := make([]attendance.MonthGrid, 0, 12)
	for m := time.January; m <= time.December; m++ {
		firstDay := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		lastDay := daysInMonth(year, m)

		days := make([]attendance.CalendarDay, 0, lastDay)
		for d := 1; d <= lastDay; d++ {
			day := attendance.Day{Year: year, Month: m, Date: d}
			days = append(days, attendance.CalendarDay{
				Day:   d,
				Level: set.LevelFor(day),
			})
		}

		grids = append(grids, attendance.MonthGrid{
			MonthName:  monthNames[m-1],
			MonthIndex: int(m),
			Offset:     mondayFirstOffset(firstDay.Weekday()),
			Days:       days,
		})
	}
	return grids
}

// BuildWeekStrip produces the trailing 7-day entries ending at "today" in
// loc, oldest first. The strip always has exactly WeekWindowDays entries
// regardless of how many records exist.
func BuildWeekStrip(now time.Time, loc *time.Location, set attendance.PresenceSet) []attendance.WeekDay {
	local := now.In(loc)
	days := make([]attendance.WeekDay, 0, WeekWindowDays)
	for i := WeekWindowDays - 1; i >= 0; i-- {
		d := local.AddDate(0, 0, -i)
		day := attendance.DayOf(d, loc)
		days = append(days, attendance.WeekDay{
			Date:    day.String(),
			DayName: dayNames[int(d.Weekday())],
			Level:   set.LevelFor(day),
		})
	}
	return days
}

// WeekWindow returns the trailing 7-day query range ending at "today": start
// is clamped to local midnight six days back, end to 23:59:59.999 of today.
func WeekWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	startDay := local.AddDate(0, 0, -(WeekWindowDays - 1))
	start := time.Date(startDay.Year(), startDay.Month(), startDay.Day(), 0, 0, 0, 0, loc)
	end := time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}

// MonthRange returns the inclusive query range for one month, from midnight
// of day 1 through 23:59:59 of the last day.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, month+1, 0, 23, 59, 59, 0, loc)
	return start, end
}

// YearRange returns the inclusive query range for one year.
func YearRange(year int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, time.December, 31, 23, 59, 59, 0, loc)
	return start, end
}
