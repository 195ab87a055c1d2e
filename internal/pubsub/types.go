package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/mauv0809/arena-agenda/internal/schedule"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub. It doubles
// as the topic name.
type EventType string

const (
	EventScheduleUpdated EventType = "schedule-updated"
	EventMatchesChanged  EventType = "matches-changed"
)

// ScheduleUpdated is published after a court's weekly template is saved.
type ScheduleUpdated struct {
	CourtID  string                  `msgpack:"courtId"`
	Template schedule.WeeklyTemplate `msgpack:"template"`
	SavedAt  time.Time               `msgpack:"savedAt"`
}

// MatchesChanged is pushed by the match backend when a court's reservations
// change.
type MatchesChanged struct {
	CourtID string `msgpack:"courtId"`
}
