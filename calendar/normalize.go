package calendar

import (
	"strings"
)

// Column names of the Schulportal calendar export.
const (
	ColTitle       = "Titel"
	ColKind        = "Art"
	ColFromDate    = "Von_Datum"
	ColFromTime    = "Von_Uhrzeit"
	ColToDate      = "Bis_Datum"
	ColToTime      = "Bis_Uhrzeit"
	ColDescription = "Beschreibung"
	ColLocation    = "Ort"
	ColResponsible = "Verantwortlich"
)

// ParseCategory infers the category from the export's explicit type field
// first, then falls back to keyword matching on the title.
func ParseCategory(kind, title string) Category {
	for _, s := range []string{kind, title} {
		s = strings.ToLower(s)
		if s == "" {
			continue
		}
		if strings.Contains(s, "klausur") {
			return Exam
		}
		if strings.Contains(s, "ferien") || strings.Contains(s, "frei") {
			return Holiday
		}
	}
	return Generic
}

// NormalizeCalendarRow turns one export row into a canonical Event.
// Rows without a parseable start date are dropped with a MalformedDateError.
func NormalizeCalendarRow(row map[string]string) (Event, error) {
	date, err := ParseDate(row[ColFromDate])
	if err != nil {
		return Event{}, err
	}

	title := strings.TrimSpace(row[ColTitle])
	if title == "" {
		title = "(ohne Titel)"
	}

	return Event{
		Title:       title,
		Category:    ParseCategory(row[ColKind], title),
		Date:        date,
		StartTime:   strings.TrimSpace(row[ColFromTime]),
		EndTime:     strings.TrimSpace(row[ColToTime]),
		Description: strings.TrimSpace(row[ColDescription]),
		Location:    strings.TrimSpace(row[ColLocation]),
		Weekday:     date.Weekday(),
	}, nil
}
