package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date is a wall-clock calendar date without a time component.
// All date handling of the feeds goes through this type so that parsing,
// sorting and filtering agree on what a date is.
type Date struct {
	Day   int
	Month int
	Year  int
}

// Sentinel sorts after every real date; entries without a parseable date
// use it so they end up last in a bucket.
var Sentinel = Date{Day: 31, Month: 12, Year: 9999}

// MalformedDateError marks a feed row whose date field cannot be parsed.
// The row is dropped and the run continues.
type MalformedDateError struct {
	Raw string
}

func (e MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q", e.Raw)
}

// ParseDate parses the DD.MM.YYYY format used by the Schulportal exports.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 3 {
		return Date{}, MalformedDateError{Raw: s}
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Date{}, MalformedDateError{Raw: s}
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Date{}, MalformedDateError{Raw: s}
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return Date{}, MalformedDateError{Raw: s}
	}
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1 {
		return Date{}, MalformedDateError{Raw: s}
	}
	return Date{Day: day, Month: month, Year: year}, nil
}

var dateExpr = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.(\d{4})`)

// FindDate extracts the first DD.MM.YYYY pattern embedded in free text.
func FindDate(s string) (Date, bool) {
	m := dateExpr.FindString(s)
	if m == "" {
		return Date{}, false
	}
	d, err := ParseDate(m)
	if err != nil {
		return Date{}, false
	}
	return d, true
}

// FromTime truncates a time.Time to its calendar date.
func FromTime(t time.Time) Date {
	return Date{Day: t.Day(), Month: int(t.Month()), Year: t.Year()}
}

func (d Date) IsZero() bool {
	return d.Day == 0 && d.Month == 0 && d.Year == 0
}

// Time places the date at local midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

func (d Date) Equal(other Date) bool {
	return d == other
}

// AddDays normalizes overflows through the stdlib calendar arithmetic.
func (d Date) AddDays(days int) Date {
	return FromTime(d.Time().AddDate(0, 0, days))
}

func (d Date) AddMonths(months int) Date {
	return FromTime(d.Time().AddDate(0, months, 0))
}

func (d Date) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, d.Month, d.Year)
}
