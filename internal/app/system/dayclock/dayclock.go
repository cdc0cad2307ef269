// Package dayclock owns the calendar-day policy for attendance marking.
//
// "Today" depends on which time zone draws the day boundary. Rather than
// trusting the host's ambient zone, the zone is loaded once from
// configuration and every day computation goes through a Clock, which keeps
// the boundary deterministic and testable.
package dayclock

import (
	"fmt"
	"time"
)

// Clock computes calendar days in a fixed time zone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New resolves the IANA zone name (e.g. "America/Chicago", "UTC") and
// returns a Clock for it.
func New(zone string) (*Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", zone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewAt returns a Clock whose "now" is supplied by the caller. Tests use
// this to pin the current instant.
func NewAt(zone string, now func() time.Time) (*Clock, error) {
	c, err := New(zone)
	if err != nil {
		return nil, err
	}
	c.now = now
	return c, nil
}

// Location returns the clock's time zone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now returns the current instant in the clock's zone.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today returns the current calendar day at midnight in the clock's zone.
// This is the dedup key component for attendance records.
func (c *Clock) Today() time.Time {
	n := c.Now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, c.loc)
}

// MonthWindow returns the inclusive [first day, last day] bounds for a
// 1-indexed month, both at midnight in the clock's zone. Records are stored
// date-normalized to midnight, so an $lte on the last day includes it.
func (c *Clock) MonthWindow(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, c.loc)
	end = start.AddDate(0, 1, -1)
	return start, end
}
