package calendar

import (
	"strings"
	"time"
)

// WeekOrder is the canonical Monday-first order the schedule is built and
// rendered in.
var WeekOrder = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
	time.Sunday:    "Sonntag",
}

// WeekdayName returns the German name used as bucket key and in rendered
// messages.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// WeekdayFromName matches a German weekday name embedded anywhere in s.
func WeekdayFromName(s string) (time.Weekday, bool) {
	s = strings.ToLower(s)
	for _, wd := range WeekOrder {
		if strings.Contains(s, strings.ToLower(weekdayNames[wd])) {
			return wd, true
		}
	}
	return time.Sunday, false
}

// Rollover reassigns weekend days to Monday. Substitution entries dated on a
// Saturday or Sunday concern the following school day.
func Rollover(d time.Weekday) time.Weekday {
	if d == time.Saturday || d == time.Sunday {
		return time.Monday
	}
	return d
}
