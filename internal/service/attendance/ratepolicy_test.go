package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearDenominator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		year int
		now  time.Time
		want int
	}{
		{
			name: "january first counts one day",
			year: 2024,
			now:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "mid june",
			year: 2024,
			now:  time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
			want: 167,
		},
		{
			name: "partial day rounds up",
			year: 2024,
			now:  time.Date(2024, time.January, 2, 13, 30, 0, 0, time.UTC),
			want: 3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, YearDenominator(tt.year, tt.now))
		})
	}
}

func TestMonthDenominator(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{name: "past month counts every day", year: 2024, month: time.May, want: 31},
		{name: "current month counts elapsed days", year: 2024, month: time.June, want: 15},
		{name: "future month counts zero", year: 2024, month: time.July, want: 0},
		{name: "past year month counts every day", year: 2023, month: time.December, want: 31},
		{name: "future year month counts zero", year: 2025, month: time.January, want: 0},
		{name: "leap february", year: 2024, month: time.February, want: 29},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MonthDenominator(tt.year, tt.month, now))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 29, daysInMonth(2024, time.February))
	assert.Equal(t, 28, daysInMonth(2023, time.February))
	assert.Equal(t, 30, daysInMonth(2024, time.April))
	assert.Equal(t, 31, daysInMonth(2024, time.December))
}
