package schedule

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"klassenbote/calendar"
)

// TimeOfDay selects the greeting variant. Only two exist; the default is
// morning.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morgen"
	Afternoon TimeOfDay = "nachmittag"
)

// ParseTimeOfDay maps the external selector onto a greeting variant,
// defaulting to morning.
func ParseTimeOfDay(s string) TimeOfDay {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Afternoon), "afternoon", "mittag":
		return Afternoon
	default:
		return Morning
	}
}

const footer = "Eine automatische Nachricht deines Klassen-Bots."

const dailyTpl = `*{{ .Greeting }} - {{ .Day }}*

{{ .Message }}
{{ if .Subjects }}
{{ range .Subjects }}• {{ . }}
{{ end }}{{ end }}
{{ .Footer }}`

const weeklyTpl = `*{{ .Greeting }} - {{ .Day }}*

📆 *WOCHENÜBERSICHT* 📆

📍 *HEUTE ({{ .Day }})*
{{ .Message }}
{{ range .Today }}• {{ . }}
{{ end }}{{ if .Upcoming }}
📅 *DIE NÄCHSTEN TAGE*
{{ range .Upcoming }}▫️ *{{ .Name }}:* {{ .First }}{{ if .More }} (+{{ .More }} weitere){{ end }}
{{ end }}{{ end }}{{ if .NextWeek }}
⏭️ *NÄCHSTE WOCHE*
{{ range .NextWeek }}▫️ *{{ .Name }}:* {{ .First }}{{ if .More }} (+{{ .More }} weitere){{ end }}
{{ end }}{{ end }}
{{ .Footer }}`

var dailyTemplate = template.Must(template.New("daily").Parse(dailyTpl))
var weeklyTemplate = template.Must(template.New("weekly").Parse(weeklyTpl))

type dailyModel struct {
	Greeting string
	Day      string
	Message  string
	Subjects []string
	Footer   string
}

type dayPreview struct {
	Name  string
	First string
	More  int
}

type weeklyModel struct {
	Greeting string
	Day      string
	Message  string
	Today    []string
	Upcoming []dayPreview
	NextWeek []dayPreview
	Footer   string
}

func greeting(tod TimeOfDay, class string) string {
	salute := "Guten Morgen"
	if tod == Afternoon {
		salute = "Guten Nachmittag"
	}
	if class == "" {
		return salute + "!"
	}
	return fmt.Sprintf("%s %s!", salute, class)
}

// RenderDaily builds the single-day message for a weekday.
func RenderDaily(w Weekly, wd time.Weekday, tod TimeOfDay, class string) string {
	name := calendar.WeekdayName(wd)
	day, ok := w[name]
	if !ok {
		return "Keine Informationen für heute verfügbar."
	}
	m := dailyModel{
		Greeting: greeting(tod, class),
		Day:      name,
		Message:  day.Message,
		Subjects: day.Subjects,
		Footer:   footer,
	}
	buf := bytes.Buffer{}
	if err := dailyTemplate.Execute(&buf, m); err != nil {
		return fmt.Sprintf("unable to render message: %s", err)
	}
	return buf.String()
}

// RenderWeekly builds the week-overview message: the full current day,
// previews for the remaining weekdays, and, when today is not Monday, the
// next-week previews for the weekdays already behind us. Empty days are
// omitted.
func RenderWeekly(w Weekly, wd time.Weekday, tod TimeOfDay, class string) string {
	name := calendar.WeekdayName(wd)
	today, ok := w[name]
	if !ok {
		return "Keine Informationen für diese Woche verfügbar."
	}

	idx := 0
	for i, d := range calendar.WeekOrder {
		if d == wd {
			idx = i
			break
		}
	}

	m := weeklyModel{
		Greeting: greeting(tod, class),
		Day:      name,
		Message:  today.Message,
		Today:    today.Subjects,
		Footer:   footer,
	}
	for _, d := range calendar.WeekOrder[idx+1:] {
		if p, ok := preview(w, d); ok {
			m.Upcoming = append(m.Upcoming, p)
		}
	}
	if idx > 0 {
		for _, d := range calendar.WeekOrder[:idx] {
			if p, ok := preview(w, d); ok {
				m.NextWeek = append(m.NextWeek, p)
			}
		}
	}

	buf := bytes.Buffer{}
	if err := weeklyTemplate.Execute(&buf, m); err != nil {
		return fmt.Sprintf("unable to render message: %s", err)
	}
	return buf.String()
}

// preview reduces a day to its first line plus a count of the remaining
// ones, in the order the aggregator established.
func preview(w Weekly, wd time.Weekday) (dayPreview, bool) {
	day, ok := w[calendar.WeekdayName(wd)]
	if !ok || len(day.Subjects) == 0 {
		return dayPreview{}, false
	}
	return dayPreview{
		Name:  calendar.WeekdayName(wd),
		First: day.Subjects[0],
		More:  len(day.Subjects) - 1,
	}, true
}
