package schedule

import (
	"klassenbote/calendar"
)

const (
	// graceDays is the trailing window: events older than this are dropped
	// at ingestion.
	graceDays = 7
	// horizonMonths caps how far into the future cross-year events may
	// reach.
	horizonMonths = 3
)

// Relevant decides whether a calendar event belongs in the outgoing
// schedule: same year as the reference date, or within the next three
// months. Substitution entries are always relevant for their assigned day.
func Relevant(ev calendar.Event, ref calendar.Date) bool {
	if ev.Category == calendar.Substitution {
		return true
	}
	if ev.Date.IsZero() {
		return false
	}
	if ev.Date.Year == ref.Year {
		return true
	}
	return ev.Date.After(ref) && ev.Date.Before(ref.AddMonths(horizonMonths))
}

// WithinGrace reports whether the event is not more than graceDays in the
// past. The boundary day itself is still included.
func WithinGrace(ev calendar.Event, ref calendar.Date) bool {
	if ev.Date.IsZero() {
		return true
	}
	return !ev.Date.Before(ref.AddDays(-graceDays))
}
