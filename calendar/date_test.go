package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Date
		err  bool
	}{
		{name: "plain", raw: "05.06.2025", want: Date{Day: 5, Month: 6, Year: 2025}},
		{name: "no leading zeros", raw: "5.6.2025", want: Date{Day: 5, Month: 6, Year: 2025}},
		{name: "surrounding space", raw: " 24.12.2025 ", want: Date{Day: 24, Month: 12, Year: 2025}},
		{name: "empty", raw: "", err: true},
		{name: "two segments", raw: "05.06", err: true},
		{name: "garbage", raw: "morgen", err: true},
		{name: "month out of range", raw: "05.13.2025", err: true},
		{name: "day out of range", raw: "32.01.2025", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.raw)
			if tt.err {
				require.Error(t, err)
				assert.ErrorAs(t, err, &MalformedDateError{})
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindDate(t *testing.T) {
	d, ok := FindDate("Vertretungsplan für den 05.06.2025 (Donnerstag)")
	require.True(t, ok)
	assert.Equal(t, Date{Day: 5, Month: 6, Year: 2025}, d)

	_, ok = FindDate("Vertretungsplan für Donnerstag")
	assert.False(t, ok)
}

func TestDateWeekday(t *testing.T) {
	assert.Equal(t, time.Thursday, Date{Day: 5, Month: 6, Year: 2025}.Weekday())
	assert.Equal(t, time.Wednesday, Date{Day: 4, Month: 6, Year: 2025}.Weekday())
	assert.Equal(t, time.Saturday, Date{Day: 7, Month: 6, Year: 2025}.Weekday())
}

func TestDateOrdering(t *testing.T) {
	earlier := Date{Day: 4, Month: 6, Year: 2025}
	later := Date{Day: 5, Month: 6, Year: 2025}

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.True(t, later.After(earlier))
	assert.True(t, earlier.Equal(earlier))

	assert.True(t, later.Before(Sentinel))
	assert.True(t, Date{Day: 31, Month: 12, Year: 2025}.Before(Date{Day: 1, Month: 1, Year: 2026}))
}

func TestDateArithmetic(t *testing.T) {
	ref := Date{Day: 28, Month: 6, Year: 2025}

	assert.Equal(t, Date{Day: 1, Month: 7, Year: 2025}, ref.AddDays(3))
	assert.Equal(t, Date{Day: 21, Month: 6, Year: 2025}, ref.AddDays(-7))
	assert.Equal(t, Date{Day: 28, Month: 9, Year: 2025}, ref.AddMonths(3))
	assert.Equal(t, Date{Day: 31, Month: 1, Year: 2026}, Date{Day: 31, Month: 10, Year: 2025}.AddMonths(3))
}

func TestFromTime(t *testing.T) {
	now := time.Date(2025, time.June, 4, 15, 30, 0, 0, time.Local)
	assert.Equal(t, Date{Day: 4, Month: 6, Year: 2025}, FromTime(now))
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "05.06.2025", Date{Day: 5, Month: 6, Year: 2025}.String())
}

func TestWeekdayFromName(t *testing.T) {
	wd, ok := WeekdayFromName("Vertretungen für Mittwoch, den 04.06.")
	require.True(t, ok)
	assert.Equal(t, time.Wednesday, wd)

	wd, ok = WeekdayFromName("donnerstag")
	require.True(t, ok)
	assert.Equal(t, time.Thursday, wd)

	_, ok = WeekdayFromName("kein Wochentag hier")
	assert.False(t, ok)
}

func TestRollover(t *testing.T) {
	assert.Equal(t, time.Monday, Rollover(time.Saturday))
	assert.Equal(t, time.Monday, Rollover(time.Sunday))
	assert.Equal(t, time.Friday, Rollover(time.Friday))
	assert.Equal(t, time.Wednesday, Rollover(time.Wednesday))
}
