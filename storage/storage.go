package storage

import (
	"time"

	"klassenbote/calendar"
	"klassenbote/schedule"
)

// DateCursor selects a date range for loading events: D is added to T, a
// negative duration loads backwards.
type DateCursor struct {
	T time.Time
	D time.Duration
}

func Cursor(st time.Time, d time.Duration) DateCursor {
	return DateCursor{
		T: st,
		D: d,
	}
}

type Saver interface {
	SaveSchedule(schedule.Weekly) error
	SaveEvents([]calendar.Event) error
}

type Loader interface {
	LoadSchedule() (schedule.Weekly, error)
	LoadEvents(DateCursor) ([]calendar.Event, error)
}
