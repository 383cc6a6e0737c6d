package vertretung

import (
	"fmt"
	"strings"
	"time"

	"klassenbote/calendar"
)

// Unstructured entries are cut down so a single broken scrape cannot flood
// the group chat.
const maxRawLen = 100

// UnknownWeekdayError records that no weekday could be derived for a row and
// the run's current weekday was used instead. The entry is never dropped.
type UnknownWeekdayError struct {
	Datum string
}

func (e UnknownWeekdayError) Error() string {
	return fmt.Sprintf("no weekday derivable from %q, filed under today", e.Datum)
}

type field struct {
	key    string
	render func(string) string
}

// Display order of the structured columns.
var fieldOrder = [6]field{
	{key: "klasse", render: func(v string) string { return "Klasse " + v }},
	{key: "stunde", render: func(v string) string { return v + ". Std." }},
	{key: "fach", render: func(v string) string { return "Fach " + v }},
	{key: "lehrer", render: func(v string) string { return "bei " + v }},
	{key: "raum", render: func(v string) string { return "Raum " + v }},
	{key: "hinweis", render: func(v string) string { return "Hinweis: " + v }},
}

// canonicalField maps an arbitrary scraped column header to one of the known
// field keys, or returns "" when the column is not recognized.
func canonicalField(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	switch {
	case strings.Contains(h, "klasse"):
		return "klasse"
	case strings.Contains(h, "stunde"), strings.Contains(h, "std"):
		return "stunde"
	case strings.Contains(h, "fach"):
		return "fach"
	case strings.Contains(h, "lehrer"), strings.Contains(h, "vertret"):
		return "lehrer"
	case strings.Contains(h, "raum"):
		return "raum"
	case strings.Contains(h, "hinweis"), strings.Contains(h, "bemerk"), strings.Contains(h, "info"), strings.Contains(h, "text"):
		return "hinweis"
	}
	return ""
}

// Normalize turns a scraped row into a canonical substitution event. The
// returned event is always usable; a non-nil error is an UnknownWeekdayError
// diagnostic for the caller to record.
func Normalize(r Row, now time.Time) (calendar.Event, error) {
	ev := calendar.Event{Category: calendar.Substitution}

	var datum string
	switch r := r.(type) {
	case StructuredRow:
		datum = r.Datum
		segments := make([]string, 0, len(fieldOrder))
		for _, f := range fieldOrder {
			if v := strings.TrimSpace(r.Fields[f.key]); v != "" {
				segments = append(segments, f.render(v))
			}
		}
		ev.Title = strings.Join(segments, ", ")
	case RawTextRow:
		datum = r.Datum
		ev.RawText = truncate(strings.TrimSpace(r.Text))
	}

	var err error
	ev.Weekday, ev.Date, err = deriveWeekday(datum, now)
	return ev, err
}

// deriveWeekday tries a weekday name embedded in the date text first, then a
// DD.MM.YYYY pattern, and falls back to the run's current weekday. Weekend
// results roll over to Monday.
func deriveWeekday(datum string, now time.Time) (time.Weekday, calendar.Date, error) {
	if wd, ok := calendar.WeekdayFromName(datum); ok {
		return calendar.Rollover(wd), calendar.Date{}, nil
	}
	if d, ok := calendar.FindDate(datum); ok {
		return calendar.Rollover(d.Weekday()), d, nil
	}
	return calendar.Rollover(now.Weekday()), calendar.Date{}, UnknownWeekdayError{Datum: datum}
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxRawLen {
		return s
	}
	return string(runes[:maxRawLen]) + "…"
}
