package season

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/preston-bernstein/nba-stats-service/internal/timeutil"
)

// DefaultTimezone is where the league keeps its calendar.
const DefaultTimezone = "America/New_York"

// seasonStartMonth is the first month that belongs to the next season.
const seasonStartMonth = time.October

// Label returns the season label ("2024-25") for the calendar date of t.
// From October on the season that starts this year is current; before that,
// the one that started last year.
func Label(t time.Time) string {
	endYear := t.Year()
	if t.Month() >= seasonStartMonth {
		endYear++
	}
	return fmt.Sprintf("%d-%02d", endYear-1, endYear%100)
}

// Clock derives the current season from a clock reading.
type Clock struct {
	clock clockwork.Clock
	loc   *time.Location
}

// NewClock builds a Clock over c in the named timezone. A nil clock uses the
// real clock; an empty or unknown timezone falls back to DefaultTimezone, then UTC.
func NewClock(c clockwork.Clock, tz string) *Clock {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	loc := timeutil.ResolveLocation(tz)
	if loc == nil {
		loc = timeutil.ResolveLocation(DefaultTimezone)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{clock: c, loc: loc}
}

// Current returns the label of the season in progress.
func (c *Clock) Current() string {
	return Label(c.clock.Now().In(c.loc))
}
