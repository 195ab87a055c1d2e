package http

import (
	"net/http"

	"github.com/mauv0809/arena-agenda/internal/arena"
	"github.com/mauv0809/arena-agenda/internal/pubsub"
)

type Server struct {
	Arena          *arena.Service
	PubSub         pubsub.PubSubClient
	MetricsHandler http.Handler
	Router         *http.ServeMux
}

type slotsResponse struct {
	CourtID string   `json:"courtId"`
	Date    string   `json:"date"`
	Slots   []string `json:"slots"`
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// pushMessage is the envelope of a Pub/Sub push delivery.
type pushMessage struct {
	Subscription string `json:"subscription"`
	Message      struct {
		Data      string `json:"data"` // base64-encoded MessagePack payload
		MessageID string `json:"messageId"`
	} `json:"message"`
}
