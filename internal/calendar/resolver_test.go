package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var utcMinus3 = time.FixedZone("UTC-3", -3*60*60)

func TestToLocalDay(t *testing.T) {
	r := New(utcMinus3).WithClock(func() time.Time {
		return time.Date(2026, 1, 26, 1, 0, 0, 0, time.UTC) // 22:00 on the 25th locally
	})

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"iso day unchanged", "2026-01-26", "2026-01-26"},
		{"brazilian day rewritten", "26/01/2026", "2026-01-26"},
		{"utc timestamp shifted back a day", "2026-01-26T02:00:00.000Z", "2026-01-25"},
		{"utc timestamp without millis", "2026-01-26T02:00:00Z", "2026-01-25"},
		{"utc timestamp same day", "2026-01-26T15:00:00Z", "2026-01-26"},
		{"offset timestamp", "2026-01-26T00:30:00-03:00", "2026-01-26"},
		{"zone-less timestamp is local", "2026-01-26T00:30:00", "2026-01-26"},
		{"space separated", "2026-01-26 23:59:00", "2026-01-26"},
		{"epoch seconds", "1769392800", "2026-01-25"},
		{"epoch millis", "1769392800000", "2026-01-25"},
		{"today label", "today", "2026-01-25"},
		{"hoje label", "Hoje", "2026-01-25"},
		{"tomorrow label", "amanhã", "2026-01-26"},
		{"yesterday label", "yesterday", "2026-01-24"},
		{"surrounding whitespace", "  2026-01-26  ", "2026-01-26"},
		{"garbage", "next tuesday-ish", ""},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.ToLocalDay(tc.value))
		})
	}
}

func TestToLocalDay_NeverSlicesUTC(t *testing.T) {
	r := New(utcMinus3)
	// Every instant between 00:00 and 03:00 UTC is the previous day in UTC-3.
	for minute := 0; minute < 180; minute += 7 {
		instant := time.Date(2026, 1, 26, 0, minute, 0, 0, time.UTC)
		assert.Equal(t, "2026-01-25", r.ToLocalDay(instant.Format(time.RFC3339Nano)), instant.String())
	}
}

func TestTimeOfDay(t *testing.T) {
	r := New(utcMinus3)

	tests := []struct {
		name      string
		explicit  string
		timestamp string
		want      string
	}{
		{"explicit clock wins", "19:00", "2026-03-10T01:30:00.000Z", "19:00"},
		{"explicit clock with seconds", "7:05:00", "", "07:05"},
		{"explicit timestamp", "2026-03-10T01:30:00.000Z", "", "22:30"},
		{"falls back to timestamp", "", "2026-03-10T01:30:00.000Z", "22:30"},
		{"invalid explicit clock", "25:00", "", ""},
		{"out of range clock falls back to timestamp", "25:00", "2026-03-10T01:30:00.000Z", "22:30"},
		{"garbage falls back to timestamp", "garbage", "2026-03-10T01:30:00.000Z", "22:30"},
		{"nothing usable", "soon", "later", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.TimeOfDay(tc.explicit, tc.timestamp))
		})
	}
}

func TestMatchWithoutExplicitTime(t *testing.T) {
	r := New(utcMinus3)
	const startAt = "2026-03-10T01:30:00.000Z"

	assert.Equal(t, "2026-03-09", r.ToLocalDay(startAt))
	assert.Equal(t, "22:30", r.TimeOfDay("", startAt))
}

func TestDate(t *testing.T) {
	r := New(utcMinus3)

	d, ok := r.Date("2026-01-26T02:00:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 25, 0, 0, 0, 0, utcMinus3), d)
	assert.Equal(t, time.Sunday, d.Weekday())

	_, ok = r.Date("not a date")
	assert.False(t, ok)
}

func TestNew_NilLocation(t *testing.T) {
	assert.Equal(t, time.Local, New(nil).Location())
}
