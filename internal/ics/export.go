// Package ics exports the event set as an iCalendar document, one
// VEVENT per stored event anchored to that weekday in the current
// week.
package ics

import (
	"errors"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	applog "weekgrid/internal/log"
	"weekgrid/internal/model"
	"weekgrid/internal/timefmt"
)

// DefaultFileName is the name offered when exporting a schedule.
const DefaultFileName = "schedule.ics"

// ErrNoEvents is returned when there is nothing to export.
var ErrNoEvents = errors.New("ics: no events to export")

var weekdayByPrefix = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// Export renders events as an iCalendar payload. Each event becomes a
// single VEVENT on its weekday within the week containing now (weeks
// start on Monday). Events whose day label matches no weekday are
// skipped, mirroring how unknown days never render on the grid.
func Export(events []model.Event, now time.Time) ([]byte, error) {
	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	weekStart := startOfWeek(now)

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	exported := 0
	for _, ev := range events {
		wd, ok := weekdayForLabel(ev.Day)
		if !ok {
			applog.Debug("ics export skipping unknown day", "day", ev.Day, "title", ev.Title)
			continue
		}

		day := weekStart.AddDate(0, 0, dayOffset(wd))
		start := day.Add(time.Duration(timefmt.ToMinutes(ev.StartTime)) * time.Minute)
		end := day.Add(time.Duration(timefmt.ToMinutes(ev.EndTime)) * time.Minute)

		ve := cal.AddEvent(ev.ID)
		ve.SetDtStampTime(now)
		ve.SetStartAt(start)
		ve.SetEndAt(end)
		ve.SetSummary(ev.Title)
		exported++
	}

	if exported == 0 {
		return nil, ErrNoEvents
	}

	applog.Info("ics export completed", "event_count", exported)
	return []byte(cal.Serialize()), nil
}

// weekdayForLabel resolves a configured day label ("Mon", "Monday",
// "tuesday") to a weekday by its first three letters.
func weekdayForLabel(label string) (time.Weekday, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	if len(l) < 3 {
		return 0, false
	}
	wd, ok := weekdayByPrefix[l[:3]]
	return wd, ok
}

// startOfWeek returns midnight of the Monday on or before t.
func startOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -dayOffset(t.Weekday()))
}

// dayOffset is the distance in days from Monday.
func dayOffset(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
