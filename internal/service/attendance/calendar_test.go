package attendance

import (
	"testing"
	"time"

	"github.com/HarshitVatsa-7/employee-management-system/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMondayFirstOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, mondayFirstOffset(time.Monday))
	assert.Equal(t, 5, mondayFirstOffset(time.Saturday))
	assert.Equal(t, 6, mondayFirstOffset(time.Sunday))
}

func TestBuildYearCalendar(t *testing.T) {
	t.Parallel()

	set := attendance.PresenceSet{
		{Year: 2024, Month: time.January, Date: 5}:   {},
		{Year: 2024, Month: time.February, Date: 29}: {},
	}

	grids := BuildYearCalendar(2024, set)
	require.Len(t, grids, 12)

	jan := grids[0]
	assert.Equal(t, "Jan", jan.MonthName)
	assert.Equal(t, 1, jan.MonthIndex)
	// January 1, 2024 was a Monday.
	assert.Equal(t, 0, jan.Offset)
	require.Len(t, jan.Days, 31)
	assert.Equal(t, attendance.LevelPresent, jan.Days[4].Level)
	assert.Equal(t, attendance.LevelAbsent, jan.Days[5].Level)

	feb := grids[1]
	assert.Equal(t, "Feb", feb.MonthName)
	require.Len(t, feb.Days, 29)
	assert.Equal(t, attendance.LevelPresent, feb.Days[28].Level)
	assert.Equal(t, 29, feb.Days[28].Day)

	dec := grids[11]
	assert.Equal(t, "Dec", dec.MonthName)
	assert.Equal(t, 12, dec.MonthIndex)
	require.Len(t, dec.Days, 31)
}

func TestBuildYearCalendarSundayStart(t *testing.T) {
	t.Parallel()

	// January 1, 2023 was a Sunday, the last Monday-first column.
	grids := BuildYearCalendar(2023, attendance.PresenceSet{})
	assert.Equal(t, 6, grids[0].Offset)
	assert.Len(t, grids[1].Days, 28)
}

func TestBuildWeekStrip(t *testing.T) {
	t.Parallel()

	// Saturday June 15, 2024.
	now := time.Date(2024, time.June, 15, 18, 30, 0, 0, time.UTC)
	set := attendance.PresenceSet{
		{Year: 2024, Month: time.June, Date: 15}: {},
		{Year: 2024, Month: time.June, Date: 12}: {},
	}

	days := BuildWeekStrip(now, time.UTC, set)
	require.Len(t, days, WeekWindowDays)

	// Oldest first: the strip starts six days back and ends today.
	assert.Equal(t, "2024-06-09", days[0].Date)
	assert.Equal(t, "Sun", days[0].DayName)
	assert.Equal(t, "2024-06-15", days[6].Date)
	assert.Equal(t, "Sat", days[6].DayName)

	assert.Equal(t, attendance.LevelAbsent, days[0].Level)
	assert.Equal(t, attendance.LevelPresent, days[3].Level)
	assert.Equal(t, attendance.LevelPresent, days[6].Level)
}

func TestBuildWeekStripEmptySet(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	days := BuildWeekStrip(now, time.UTC, attendance.PresenceSet{})
	require.Len(t, days, WeekWindowDays)
	for _, d := range days {
		assert.Equal(t, attendance.LevelAbsent, d.Level)
	}
}

func TestWeekWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 18, 30, 45, 0, time.UTC)
	start, end := WeekWindow(now, time.UTC)

	assert.Equal(t, time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
	assert.Equal(t, 15, end.Day())
}

func TestWeekWindowCrossesMonthBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.March, 3, 12, 0, 0, 0, time.UTC)
	start, _ := WeekWindow(now, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 26, 0, 0, 0, 0, time.UTC), start)
}

func TestMonthRange(t *testing.T) {
	t.Parallel()

	start, end := MonthRange(2024, time.February, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 29, end.Day())
	assert.Equal(t, time.February, end.Month())
}

func TestYearRange(t *testing.T) {
	t.Parallel()

	start, end := YearRange(2024, time.UTC)
	assert.Equal(t, time.January, start.Month())
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, time.December, end.Month())
	assert.Equal(t, 31, end.Day())
}
