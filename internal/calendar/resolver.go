// Package calendar normalises the date shapes seen in match records and
// requests into unambiguous local calendar days.
//
// All date coercion goes through Resolver. Timestamps are always parsed and
// converted into the resolver's location before the day is read: slicing the
// first ten characters of "2026-01-26T02:00:00Z" yields the UTC day, which is
// a day ahead for anything west of Greenwich in the evening.
package calendar

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DayLayout   = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	isoDay   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	brDay    = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	clock    = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)
	numeric  = regexp.MustCompile(`^-?\d+$`)
	dayWords = map[string]int{
		"today":     0,
		"hoje":      0,
		"tomorrow":  1,
		"amanhã":    1,
		"amanha":    1,
		"yesterday": -1,
		"ontem":     -1,
	}
)

// Layouts tried, in order, for timestamp strings. Zone-less layouts are read
// as wall-clock time in the resolver's location.
var (
	zonedLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.000Z0700", "2006-01-02T15:04:05Z0700"}
	localLayouts = []string{"2006-01-02T15:04:05.000", "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02 15:04"}
)

// Resolver converts loose date values into days of a single location.
type Resolver struct {
	loc *time.Location
	now func() time.Time
}

// New creates a Resolver for loc. A nil loc means time.Local.
func New(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{loc: loc, now: time.Now}
}

// WithClock returns a copy of r that uses now for relative labels.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	return &Resolver{loc: r.loc, now: now}
}

// Location is the zone days are resolved in.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// ToLocalDay returns value as "YYYY-MM-DD" in the resolver's location, or ""
// when value is not a usable date.
func (r *Resolver) ToLocalDay(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if isoDay.MatchString(value) {
		return value
	}
	if m := brDay.FindStringSubmatch(value); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1]
	}
	if offset, ok := dayWords[strings.ToLower(value)]; ok {
		return r.now().In(r.loc).AddDate(0, 0, offset).Format(DayLayout)
	}
	t, ok := r.Parse(value)
	if !ok {
		return ""
	}
	return t.Format(DayLayout)
}

// Date returns midnight of the resolved day in the resolver's location.
func (r *Resolver) Date(value string) (time.Time, bool) {
	day := r.ToLocalDay(value)
	if day == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DayLayout, day, r.loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Parse reads a full timestamp and returns it in the resolver's location.
// Numeric values are Unix epochs, in milliseconds when they are too large to
// be seconds.
func (r *Resolver) Parse(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if numeric.MatchString(value) {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return r.FromEpoch(n), true
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(r.loc), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, r.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FromEpoch converts a Unix timestamp in seconds or milliseconds.
func (r *Resolver) FromEpoch(n int64) time.Time {
	// Anything past year 5138 in seconds is treated as milliseconds.
	if n > 99_999_999_999 || n < -99_999_999_999 {
		return time.UnixMilli(n).In(r.loc)
	}
	return time.Unix(n, 0).In(r.loc)
}

// TimeOfDay returns "HH:MM" from an explicit time field, or failing that from
// the local hour and minute of timestamp. It returns "" when neither works.
func (r *Resolver) TimeOfDay(explicit, timestamp string) string {
	explicit = strings.TrimSpace(explicit)
	if m := clock.FindStringSubmatch(explicit); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if h <= 23 && mm <= 59 {
			return time.Date(2000, 1, 1, h, mm, 0, 0, time.UTC).Format(ClockLayout)
		}
	} else if t, ok := r.Parse(explicit); ok {
		return t.Format(ClockLayout)
	}
	if t, ok := r.Parse(timestamp); ok {
		return t.Format(ClockLayout)
	}
	return ""
}
