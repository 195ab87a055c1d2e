package schedule

import "time"

// WeeklyTemplate is the recurring open/close configuration of one court.
type WeeklyTemplate struct {
	SlotMinutes int                          `json:"slotMinutes" yaml:"slotMinutes" msgpack:"slotMinutes"`
	Days        map[time.Weekday]DaySchedule `json:"days" yaml:"days" msgpack:"days"`
}

// DaySchedule is the opening window for a single weekday. Open and Close are
// "HH:MM" wall-clock times; "24:00" closes at the end of the day.
type DaySchedule struct {
	Enabled bool   `json:"enabled" yaml:"enabled" msgpack:"enabled"`
	Open    string `json:"open" yaml:"open" msgpack:"open"`
	Close   string `json:"close" yaml:"close" msgpack:"close"`
}

const (
	MinSlotMinutes     = 15
	DefaultSlotMinutes = 60
	DefaultOpen        = "09:00"
	DefaultClose       = "23:00"
	MinutesPerDay      = 24 * 60
)
