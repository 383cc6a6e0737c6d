package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Category tags an event for formatting and filtering.
type Category string

const (
	Exam         Category = "klausur"
	Holiday      Category = "ferien"
	Substitution Category = "vertretung"
	Generic      Category = "termin"
)

const (
	fullDayStart = "00:00"
	fullDayEnd   = "23:59"
)

// Event is the canonical unit of schedule information, produced from either
// feed and consumed by the aggregator.
type Event struct {
	Title       string       `json:"title"`
	Category    Category     `json:"category"`
	Date        Date         `json:"date"`
	StartTime   string       `json:"startTime,omitempty"`
	EndTime     string       `json:"endTime,omitempty"`
	Description string       `json:"description,omitempty"`
	Location    string       `json:"location,omitempty"`
	RawText     string       `json:"rawText,omitempty"`
	Weekday     time.Weekday `json:"weekday"`
}

// IsValid reports whether the event can appear in a schedule: it either
// carries a date or is an unstructured substitution entry.
func (e Event) IsValid() bool {
	if !e.Date.IsZero() {
		return true
	}
	return e.Category == Substitution && (e.RawText != "" || e.Title != "")
}

// SortDate is the date used for ordering inside a bucket; undated entries
// sort last.
func (e Event) SortDate() Date {
	if e.Date.IsZero() {
		return Sentinel
	}
	return e.Date
}

// IsFullDay reports whether the time range is the full-day sentinel the
// portal export uses, which is suppressed from rendering.
func (e Event) IsFullDay() bool {
	return e.StartTime == fullDayStart && e.EndTime == fullDayEnd
}

func (e Event) marker() string {
	switch e.Category {
	case Exam:
		return "📝"
	case Holiday:
		return "🎊"
	case Substitution:
		return "🔄"
	default:
		return "📌"
	}
}

// Line renders the event as one display-ready schedule line.
func (e Event) Line() string {
	if e.Category == Substitution {
		if e.RawText != "" {
			return fmt.Sprintf("%s %s", e.marker(), e.RawText)
		}
		return fmt.Sprintf("%s %s", e.marker(), e.Title)
	}

	b := strings.Builder{}
	b.WriteString(e.marker())
	b.WriteString(fmt.Sprintf(" *%s:* %s", e.Date, e.Title))
	if e.Category == Holiday {
		b.WriteString(" (schulfrei)")
	}
	if !e.IsFullDay() {
		if e.StartTime != "" && e.EndTime != "" {
			b.WriteString(fmt.Sprintf(" (%s-%s Uhr)", e.StartTime, e.EndTime))
		} else if e.StartTime != "" {
			b.WriteString(fmt.Sprintf(" (%s Uhr)", e.StartTime))
		}
	}
	if e.Description != "" {
		b.WriteString(" - ")
		b.WriteString(e.Description)
	}
	if e.Location != "" {
		b.WriteString(fmt.Sprintf(" (Ort: %s)", e.Location))
	}
	return b.String()
}

func (e Event) String() string {
	return e.Line()
}
