// Package ical serves the persisted schedule over HTTP: the dated events as
// an iCal feed and the weekly snapshot as an HTML overview.
package ical

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mariusor/render"
	"github.com/soh335/ical"
	"gitlab.com/golang-commonmark/markdown"

	"klassenbote/calendar"
	"klassenbote/storage"
	"klassenbote/storage/boltdb"
)

type handler struct {
	path string
	ren  *render.Render
	md   *markdown.Markdown
}

func NewHandler(p string) *handler {
	return &handler{
		path: path.Join(p, boltdb.DefaultFile),
		ren: render.New(render.Options{
			Directory:  "templates",
			Layout:     "main",
			Extensions: []string{".html"},
			Charset:    "UTF-8",
		}),
		md: markdown.New(
			markdown.HTML(false),
			markdown.Linkify(false),
			markdown.Typographer(true),
			markdown.Breaks(true),
		),
	}
}

// Calendar serves the stored events of one year as an iCal feed.
func (h *handler) Calendar(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if y := chi.URLParam(r, "year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, "Invalid year %s", y)
			return
		}
		year = parsed
	}

	st := boltdb.New(boltdb.Config{Path: h.path})
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	duration := 8759*time.Hour + 59*time.Minute + 59*time.Second

	events, err := st.LoadEvents(storage.Cursor(start, duration))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "%s", err)
		return
	}

	cal := ical.NewBasicVCalendar()
	cal.PRODID = "-//KLASSENBOTE//SCHULKALENDER//DE"
	cal.VERSION = "2.0"

	name := "Klassenbote"
	cal.NAME = name
	cal.X_WR_CALNAME = name
	description := fmt.Sprintf("Schultermine %d", year)
	cal.DESCRIPTION = description
	cal.X_WR_CALDESC = description

	tz := start.Location().String()
	cal.TIMEZONE_ID = tz
	cal.X_WR_TIMEZONE = tz

	cal.REFRESH_INTERVAL = "PT1H"
	cal.X_PUBLISHED_TTL = "PT1H"
	cal.CALSCALE = "GREGORIAN"
	cal.METHOD = "PUBLISH"

	for _, ev := range events {
		start, end := eventTimes(ev)
		e := &ical.VEvent{
			UID:         fmt.Sprintf("%s-%s", ev.Date.Time().Format("20060102"), ev.Title),
			DTSTAMP:     start,
			DTSTART:     start,
			DTEND:       end,
			SUMMARY:     ev.Title,
			DESCRIPTION: ev.Description,
			TZID:        tz,
			AllDay:      ev.IsFullDay() || ev.StartTime == "",
		}
		cal.VComponent = append(cal.VComponent, e)
	}

	b := &bytes.Buffer{}
	if err := cal.Encode(b); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "%s", err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Write(b.Bytes())
}

func eventTimes(ev calendar.Event) (time.Time, time.Time) {
	day := ev.Date.Time()
	start, end := day, day.AddDate(0, 0, 1)
	if ev.IsFullDay() {
		return start, end
	}
	if t, err := time.Parse("15:04", ev.StartTime); err == nil {
		start = day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
		end = start.Add(45 * time.Minute)
	}
	if t, err := time.Parse("15:04", ev.EndTime); err == nil {
		end = day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	}
	return start, end
}

type overviewDay struct {
	Name    string
	Message template.HTML
	Lines   []template.HTML
}

// Overview renders the weekly snapshot as an HTML page. The schedule lines
// carry chat-flavored markup, which commonmark is close enough to.
func (h *handler) Overview(w http.ResponseWriter, r *http.Request) {
	st := boltdb.New(boltdb.Config{Path: h.path})
	week, err := st.LoadSchedule()
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "no schedule snapshot: %s", err)
		return
	}

	days := make([]overviewDay, 0, len(calendar.WeekOrder))
	for _, wd := range calendar.WeekOrder {
		name := calendar.WeekdayName(wd)
		day, ok := week[name]
		if !ok {
			continue
		}
		od := overviewDay{
			Name:    name,
			Message: template.HTML(h.md.RenderToString([]byte(day.Message))),
		}
		for _, line := range day.Subjects {
			od.Lines = append(od.Lines, template.HTML(h.md.RenderToString([]byte(line))))
		}
		days = append(days, od)
	}

	h.ren.HTML(w, http.StatusOK, "schedule", days)
}
