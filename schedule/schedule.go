// Package schedule aggregates normalized events from both feeds into one
// weekly schedule and renders it into the outgoing chat messages.
package schedule

import (
	"time"

	"klassenbote/calendar"
)

// Day is one weekday bucket of the schedule: a fixed header message plus the
// ordered display-ready lines.
type Day struct {
	Message  string   `json:"message"`
	Subjects []string `json:"subjects"`
}

// Weekly maps the German weekday name to its bucket. It is built once per
// run, persisted wholesale, and read back unchanged by the renderer.
type Weekly map[string]Day

const (
	// Separator is inserted when a new section lands in a bucket that
	// already has lines.
	Separator = "➖➖➖➖➖➖➖➖"
	// SubsHeader precedes the substitution-plan lines of a day.
	SubsHeader = "🔄 *VERTRETUNGEN HEUTE* 🔄"
	// emptyNotice is appended to every bucket when the whole week carries
	// no actionable lines.
	emptyNotice = "📭 Keine Termine diese Woche - schaut zur Sicherheit ins Schulportal!"
)

var headers = map[string]string{
	"Montag":     "📅 *TERMINÜBERSICHT FÜR DIESE WOCHE* 📅",
	"Dienstag":   "📚 *ANSTEHENDE KLAUSUREN* 📝",
	"Mittwoch":   "🌟 *MITTE DER WOCHE* 🌟",
	"Donnerstag": "🗓️ *KOMMENDE FEIERTAGE* 🎉",
	"Freitag":    "📝 *FREITAGS-KLAUSUREN* 📝",
	"Samstag":    "🎉 *WOCHENENDE!* 🎉",
	"Sonntag":    "🔄 *WOCHE VORAUSPLANEN* 📆",
}

// actionable excludes the visual plumbing from "does this day have content".
func actionable(line string) bool {
	return line != Separator && line != SubsHeader && line != emptyNotice
}

func countActionable(lines []string) int {
	n := 0
	for _, l := range lines {
		if actionable(l) {
			n++
		}
	}
	return n
}

// Actionable counts the content lines of the whole week.
func (w Weekly) Actionable() int {
	n := 0
	for _, day := range w {
		n += countActionable(day.Subjects)
	}
	return n
}

// Day returns the bucket for a weekday.
func (w Weekly) Day(wd time.Weekday) (Day, bool) {
	d, ok := w[calendar.WeekdayName(wd)]
	return d, ok
}
