package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klassenbote/calendar"
	"klassenbote/calendar/vertretung"
)

func TestParseTimeOfDay(t *testing.T) {
	assert.Equal(t, Morning, ParseTimeOfDay("morgen"))
	assert.Equal(t, Morning, ParseTimeOfDay(""))
	assert.Equal(t, Morning, ParseTimeOfDay("unsinn"))
	assert.Equal(t, Afternoon, ParseTimeOfDay("nachmittag"))
	assert.Equal(t, Afternoon, ParseTimeOfDay("Mittag"))
	assert.Equal(t, Afternoon, ParseTimeOfDay("afternoon"))
}

func TestRenderDaily(t *testing.T) {
	sub := subEvent(t, vertretung.StructuredRow{
		Fields: map[string]string{"klasse": "10HBFI", "stunde": "3", "fach": "Mathe"},
		Datum:  "Mittwoch",
	})
	w := Aggregate(nil, []calendar.Event{sub}, refWednesday)

	msg := RenderDaily(w, time.Wednesday, Morning, "10HBFI")

	assert.True(t, strings.HasPrefix(msg, "*Guten Morgen 10HBFI! - Mittwoch*"))
	assert.Contains(t, msg, "🌟 *MITTE DER WOCHE* 🌟")
	assert.Contains(t, msg, "• "+SubsHeader)
	assert.Contains(t, msg, "Klasse 10HBFI")
	assert.Contains(t, msg, "3. Std.")
	assert.Contains(t, msg, "Fach Mathe")
	assert.True(t, strings.HasSuffix(strings.TrimRight(msg, "\n"), footer))
}

func TestRenderDailyAfternoonGreeting(t *testing.T) {
	w := Aggregate(nil, nil, refWednesday)
	msg := RenderDaily(w, time.Friday, Afternoon, "10HBFI")

	assert.True(t, strings.HasPrefix(msg, "*Guten Nachmittag 10HBFI! - Freitag*"))
}

func TestRenderDailyMissingBucket(t *testing.T) {
	msg := RenderDaily(Weekly{}, time.Monday, Morning, "10HBFI")
	assert.Equal(t, "Keine Informationen für heute verfügbar.", msg)
}

func TestRenderWeekly(t *testing.T) {
	events := []calendar.Event{
		calEvent(t, map[string]string{"Titel": "Matheprüfung", "Art": "Klausuren", "Von_Datum": "05.06.2025"}),
		calEvent(t, map[string]string{"Titel": "Sportfest", "Von_Datum": "06.06.2025"}),
		calEvent(t, map[string]string{"Titel": "Zeugnisse", "Von_Datum": "06.06.2025"}),
		calEvent(t, map[string]string{"Titel": "Wandertag", "Von_Datum": "09.06.2025"}),
	}
	sub := subEvent(t, vertretung.StructuredRow{
		Fields: map[string]string{"stunde": "3", "fach": "Mathe"},
		Datum:  "Mittwoch",
	})
	w := Aggregate(events, []calendar.Event{sub}, refWednesday)

	msg := RenderWeekly(w, time.Wednesday, Morning, "10HBFI")

	assert.True(t, strings.HasPrefix(msg, "*Guten Morgen 10HBFI! - Mittwoch*"))
	assert.Contains(t, msg, "📆 *WOCHENÜBERSICHT* 📆")
	assert.Contains(t, msg, "📍 *HEUTE (Mittwoch)*")
	assert.Contains(t, msg, "3. Std.")

	assert.Contains(t, msg, "📅 *DIE NÄCHSTEN TAGE*")
	assert.Contains(t, msg, "▫️ *Donnerstag:*")
	assert.Contains(t, msg, "Matheprüfung")

	// Friday holds two entries, previewed as the first plus a count
	assert.Contains(t, msg, "▫️ *Freitag:*")
	assert.Contains(t, msg, "Sportfest")
	assert.Contains(t, msg, "(+1 weitere)")
	assert.NotContains(t, msg, "Zeugnisse")

	// Wednesday is mid-week, so the already passed days preview next week
	assert.Contains(t, msg, "⏭️ *NÄCHSTE WOCHE*")
	assert.Contains(t, msg, "▫️ *Montag:*")
	assert.Contains(t, msg, "Wandertag")

	assert.Contains(t, msg, footer)
}

func TestRenderWeeklyOmitsEmptyDays(t *testing.T) {
	ev := calEvent(t, map[string]string{"Titel": "Matheprüfung", "Von_Datum": "05.06.2025"})
	w := Aggregate([]calendar.Event{ev}, nil, refWednesday)

	msg := RenderWeekly(w, time.Wednesday, Morning, "10HBFI")

	assert.Contains(t, msg, "▫️ *Donnerstag:*")
	assert.NotContains(t, msg, "▫️ *Freitag:*")
	assert.NotContains(t, msg, "▫️ *Samstag:*")
}

func TestRenderWeeklyOnMondayHasNoNextWeek(t *testing.T) {
	ev := calEvent(t, map[string]string{"Titel": "Matheprüfung", "Von_Datum": "05.06.2025"})
	w := Aggregate([]calendar.Event{ev}, nil, refWednesday)

	msg := RenderWeekly(w, time.Monday, Morning, "10HBFI")

	assert.NotContains(t, msg, "⏭️ *NÄCHSTE WOCHE*")
	assert.Contains(t, msg, "▫️ *Donnerstag:*")
}

func TestRenderWeeklyEmptyWeekCarriesNotice(t *testing.T) {
	w := Aggregate(nil, nil, refWednesday)

	msg := RenderWeekly(w, time.Wednesday, Morning, "10HBFI")
	assert.Contains(t, msg, emptyNotice)
}

func TestRenderWeeklyMissingBucket(t *testing.T) {
	msg := RenderWeekly(Weekly{}, time.Monday, Morning, "10HBFI")
	assert.Equal(t, "Keine Informationen für diese Woche verfügbar.", msg)
}

func TestGreetingWithoutClass(t *testing.T) {
	require.Equal(t, "Guten Morgen!", greeting(Morning, ""))
	require.Equal(t, "Guten Nachmittag 10HBFI!", greeting(Afternoon, "10HBFI"))
}
