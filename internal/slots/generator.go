// Package slots turns a weekly template into the bookable start times of a
// single calendar day.
package slots

import (
	"time"

	"github.com/mauv0809/arena-agenda/internal/schedule"
)

// Generate returns the ordered "HH:MM" slot start times for date. The weekday
// is taken in date's own location, so callers pass a date already in the
// court's local zone. Invalid configuration yields an empty list.
func Generate(tpl schedule.WeeklyTemplate, date time.Time) []string {
	out := []string{}

	day, ok := tpl.Days[date.Weekday()]
	if !ok || !day.Enabled {
		return out
	}

	open, ok := schedule.ParseClock(day.Open)
	if !ok {
		return out
	}
	closing, ok := schedule.ParseClock(day.Close)
	if !ok || closing <= open {
		return out
	}

	step := max(tpl.SlotMinutes, schedule.MinSlotMinutes)
	for t := open; t+step <= closing; t += step {
		out = append(out, schedule.FormatClock(t))
	}
	return out
}

// Count is the number of slots Generate would return for an enabled window.
func Count(open, closing, slotMinutes int) int {
	if closing <= open {
		return 0
	}
	return (closing - open) / max(slotMinutes, schedule.MinSlotMinutes)
}
