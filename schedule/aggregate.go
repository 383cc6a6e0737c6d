package schedule

import (
	"sort"
	"time"

	"klassenbote/calendar"
)

// Aggregate merges the normalized events of both feeds into a fresh weekly
// schedule. Substitution entries come first in their derived weekday bucket,
// in feed order; calendar entries follow in their native weekday bucket,
// date-sorted, with a separator between the two sections. When the whole
// week ends up empty a notice is appended to every bucket.
func Aggregate(calEvents, subEvents []calendar.Event, ref calendar.Date) Weekly {
	w := make(Weekly, len(calendar.WeekOrder))
	for _, wd := range calendar.WeekOrder {
		name := calendar.WeekdayName(wd)
		w[name] = Day{Message: headers[name], Subjects: []string{}}
	}

	appendSection(w, groupByWeekday(subEvents, nil, ref), func(group []calendar.Event) []string {
		lines := make([]string, 0, len(group)+1)
		lines = append(lines, SubsHeader)
		for _, ev := range group {
			lines = append(lines, ev.Line())
		}
		return lines
	})

	appendSection(w, groupByWeekday(calEvents, func(ev calendar.Event) bool {
		return WithinGrace(ev, ref) && Relevant(ev, ref)
	}, ref), func(group []calendar.Event) []string {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].SortDate().Before(group[j].SortDate())
		})
		lines := make([]string, 0, len(group))
		for _, ev := range group {
			lines = append(lines, ev.Line())
		}
		return lines
	})

	if w.Actionable() == 0 {
		for name, day := range w {
			day.Subjects = append(day.Subjects, emptyNotice)
			w[name] = day
		}
	}
	return w
}

// groupByWeekday keeps the relative feed order inside each group.
func groupByWeekday(events []calendar.Event, keep func(calendar.Event) bool, ref calendar.Date) map[time.Weekday][]calendar.Event {
	groups := make(map[time.Weekday][]calendar.Event)
	for _, ev := range events {
		if !ev.IsValid() {
			continue
		}
		if keep != nil && !keep(ev) {
			continue
		}
		groups[ev.Weekday] = append(groups[ev.Weekday], ev)
	}
	return groups
}

func appendSection(w Weekly, groups map[time.Weekday][]calendar.Event, render func([]calendar.Event) []string) {
	for _, wd := range calendar.WeekOrder {
		group := groups[wd]
		if len(group) == 0 {
			continue
		}
		name := calendar.WeekdayName(wd)
		day := w[name]
		if countActionable(day.Subjects) > 0 {
			day.Subjects = append(day.Subjects, Separator)
		}
		day.Subjects = append(day.Subjects, render(group)...)
		w[name] = day
	}
}
