package attendance

import (
	"fmt"
	"time"
)

// Day is a calendar date. Presence membership compares Day values instead of
// formatted date strings, so membership cannot drift with locale or format.
type Day struct {
	Year  int
	Month time.Month
	Date  int
}

// DayOf returns the calendar date of t in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	local := t.In(loc)
	return Day{Year: local.Year(), Month: local.Month(), Date: local.Day()}
}

// String formats the day as YYYY-MM-DD.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Date)
}

// PresenceSet holds the distinct calendar days on which a user punched in.
// Multiple sessions on the same day collapse to one membership.
type PresenceSet map[Day]struct{}

// Contains reports whether d is a presence day.
func (s PresenceSet) Contains(d Day) bool {
	_, ok := s[d]
	return ok
}

// PresenceLevel is the categorical presence indicator carried by calendar
// cells. The numeric values are part of the wire format: the heat-map client
// maps 0 and 3 to its color scale.
type PresenceLevel int

const (
	LevelAbsent  PresenceLevel = 0
	LevelPresent PresenceLevel = 3
)

// LevelFor returns the presence level of d in s.
func (s PresenceSet) LevelFor(d Day) PresenceLevel {
	if s.Contains(d) {
		return LevelPresent
	}
	return LevelAbsent
}
