package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOf(t *testing.T) {
	t.Parallel()

	jakarta := time.FixedZone("WIB", 7*3600)

	// 23:30 UTC is already the next calendar day in UTC+7.
	utcEvening := time.Date(2024, time.June, 10, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, Day{Year: 2024, Month: time.June, Date: 10}, DayOf(utcEvening, time.UTC))
	assert.Equal(t, Day{Year: 2024, Month: time.June, Date: 11}, DayOf(utcEvening, jakarta))
}

func TestDayString(t *testing.T) {
	t.Parallel()

	d := Day{Year: 2024, Month: time.March, Date: 7}
	assert.Equal(t, "2024-03-07", d.String())
}

func TestPresenceSetLevelFor(t *testing.T) {
	t.Parallel()

	d := Day{Year: 2024, Month: time.June, Date: 10}
	set := PresenceSet{d: {}}

	assert.Equal(t, LevelPresent, set.LevelFor(d))
	assert.Equal(t, LevelAbsent, set.LevelFor(Day{Year: 2024, Month: time.June, Date: 11}))
}
