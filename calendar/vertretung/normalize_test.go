package vertretung

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klassenbote/calendar"
)

func TestNormalizeStructuredRow(t *testing.T) {
	row := StructuredRow{
		Fields: map[string]string{
			"klasse":  "10HBFI",
			"stunde":  "3",
			"fach":    "Mathe",
			"lehrer":  "Herr Weber",
			"raum":    "204",
			"hinweis": "Raumwechsel",
		},
		Datum: "Mittwoch, 04.06.2025",
	}

	ev, err := Normalize(row, now)
	require.NoError(t, err)

	assert.Equal(t, calendar.Substitution, ev.Category)
	assert.Equal(t, "Klasse 10HBFI, 3. Std., Fach Mathe, bei Herr Weber, Raum 204, Hinweis: Raumwechsel", ev.Title)
	assert.Equal(t, time.Wednesday, ev.Weekday)
	assert.True(t, ev.IsValid())
}

func TestNormalizePartialFields(t *testing.T) {
	ev, err := Normalize(StructuredRow{
		Fields: map[string]string{"stunde": "6", "hinweis": "entfällt"},
		Datum:  "Freitag",
	}, now)
	require.NoError(t, err)

	assert.Equal(t, "6. Std., Hinweis: entfällt", ev.Title)
	assert.Equal(t, time.Friday, ev.Weekday)
}

func TestNormalizeRawText(t *testing.T) {
	ev, err := Normalize(RawTextRow{Text: "Heute fällt die 6. Stunde aus", Datum: "Donnerstag"}, now)
	require.NoError(t, err)

	assert.Equal(t, "Heute fällt die 6. Stunde aus", ev.RawText)
	assert.Equal(t, time.Thursday, ev.Weekday)
	assert.Equal(t, "🔄 Heute fällt die 6. Stunde aus", ev.Line())
}

func TestNormalizeTruncatesRawText(t *testing.T) {
	long := strings.Repeat("ä", 150)
	ev, err := Normalize(RawTextRow{Text: long, Datum: "Montag"}, now)
	require.NoError(t, err)

	runes := []rune(ev.RawText)
	assert.Len(t, runes, maxRawLen+1)
	assert.Equal(t, '…', runes[maxRawLen])
}

func TestNormalizeWeekdayFromDate(t *testing.T) {
	ev, err := Normalize(StructuredRow{
		Fields: map[string]string{"klasse": "10HBFI"},
		Datum:  "05.06.2025",
	}, now)
	require.NoError(t, err)

	assert.Equal(t, time.Thursday, ev.Weekday)
	assert.Equal(t, calendar.Date{Day: 5, Month: 6, Year: 2025}, ev.Date)
}

func TestNormalizeWeekendRollsToMonday(t *testing.T) {
	byName, err := Normalize(RawTextRow{Text: "AG entfällt", Datum: "Samstag"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, byName.Weekday)

	// 08.06.2025 is a Sunday
	byDate, err := Normalize(RawTextRow{Text: "AG entfällt", Datum: "08.06.2025"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, byDate.Weekday)
}

func TestNormalizeUnknownWeekdayFallsBackToToday(t *testing.T) {
	ev, err := Normalize(RawTextRow{Text: "Ausfall", Datum: "demnächst"}, now)

	require.Error(t, err)
	assert.ErrorAs(t, err, &UnknownWeekdayError{})
	// the entry is kept, filed under the run's weekday
	assert.Equal(t, time.Wednesday, ev.Weekday)
	assert.True(t, ev.IsValid())

	saturday := time.Date(2025, time.June, 7, 9, 0, 0, 0, time.Local)
	ev, err = Normalize(RawTextRow{Text: "Ausfall", Datum: ""}, saturday)
	require.Error(t, err)
	assert.Equal(t, time.Monday, ev.Weekday)
}
