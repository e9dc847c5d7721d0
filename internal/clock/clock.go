// Package clock decides civil-day boundaries for the daily check-in and
// lottery limits. Days are computed in a fixed UTC offset, not the host
// time zone, so limits behave the same wherever the service runs.
package clock

import (
	"fmt"
	"time"
)

type Policy struct {
	loc *time.Location
}

// New builds a policy with a fixed UTC offset in hours (+8 for the
// default New-API deployment).
func New(offsetHours int) *Policy {
	name := fmt.Sprintf("UTC%+d", offsetHours)
	return &Policy{loc: time.FixedZone(name, offsetHours*3600)}
}

// DayStart returns midnight of t's civil day in the policy offset.
func (p *Policy) DayStart(t time.Time) time.Time {
	y, m, d := t.In(p.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.loc)
}

// SameDay reports whether a and b fall on the same civil day.
func (p *Policy) SameDay(a, b time.Time) bool {
	return p.DayStart(a).Equal(p.DayStart(b))
}

// IsNewDay reports whether now is on a later civil day than last.
// A nil last always counts as a new day.
func (p *Policy) IsNewDay(last *time.Time, now time.Time) bool {
	if last == nil {
		return true
	}
	return p.DayStart(*last).Before(p.DayStart(now))
}
