package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var ErrInvalidTemplate = errors.New("invalid weekly template")

// Default returns the template a court gets the first time it is viewed:
// 09:00-23:00 every day except Sunday, in 60 minute slots.
func Default() WeeklyTemplate {
	days := make(map[time.Weekday]DaySchedule, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		days[d] = DaySchedule{
			Enabled: d != time.Sunday,
			Open:    DefaultOpen,
			Close:   DefaultClose,
		}
	}
	return WeeklyTemplate{SlotMinutes: DefaultSlotMinutes, Days: days}
}

// Clone returns a deep copy so callers can never mutate a stored template.
func (t WeeklyTemplate) Clone() WeeklyTemplate {
	days := make(map[time.Weekday]DaySchedule, len(t.Days))
	for d, s := range t.Days {
		days[d] = s
	}
	return WeeklyTemplate{SlotMinutes: t.SlotMinutes, Days: days}
}

// Validate rejects templates that cannot be stored. A day whose close time is
// not after its open time is accepted; it just produces no slots.
func Validate(t WeeklyTemplate) error {
	if t.SlotMinutes < MinSlotMinutes {
		return fmt.Errorf("%w: slotMinutes must be at least %d, got %d", ErrInvalidTemplate, MinSlotMinutes, t.SlotMinutes)
	}
	for d, s := range t.Days {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: unknown weekday %d", ErrInvalidTemplate, d)
		}
		if !s.Enabled {
			continue
		}
		open, ok := ParseClock(s.Open)
		if !ok {
			return fmt.Errorf("%w: %s open time %q is not HH:MM", ErrInvalidTemplate, d, s.Open)
		}
		closing, ok := ParseClock(s.Close)
		if !ok {
			return fmt.Errorf("%w: %s close time %q is not HH:MM", ErrInvalidTemplate, d, s.Close)
		}
		if closing <= open {
			log.Warn("Day closes before it opens and will have no slots", "weekday", d, "open", s.Open, "close", s.Close)
		}
	}
	return nil
}

// ParseClock converts "HH:MM" into minutes since midnight. "24:00" is 1440.
func ParseClock(value string) (int, bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	total := h*60 + m
	if total > MinutesPerDay {
		return 0, false
	}
	return total, true
}

// FormatClock converts minutes since midnight back to zero padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
