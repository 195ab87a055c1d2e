package http

import (
	"net/http"

	"github.com/mauv0809/arena-agenda/internal/arena"
	"github.com/mauv0809/arena-agenda/internal/pubsub"
)

func NewServer(svc *arena.Service, pubsubClient pubsub.PubSubClient, metricsHandler http.Handler) *Server {
	server := &Server{
		Arena:          svc,
		PubSub:         pubsubClient,
		MetricsHandler: metricsHandler,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))

	s.Router.Handle("GET /api/courts", Chain(s.ListCourtsHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/courts/{courtID}", Chain(s.GetCourtHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/courts/{courtID}/schedule", Chain(s.GetScheduleHandler(), paramsMiddleware))
	s.Router.Handle("PUT /api/courts/{courtID}/schedule", Chain(s.PutScheduleHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/courts/{courtID}/slots", Chain(s.SlotsHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/courts/{courtID}/agenda", Chain(s.AgendaHandler(), paramsMiddleware))

	s.Router.Handle("POST /api/sessions", Chain(s.OpenSessionHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /api/sessions/{sessionID}", Chain(s.CloseSessionHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/sessions/{sessionID}/drafts", Chain(s.ListDraftsHandler(), paramsMiddleware))
	s.Router.Handle("POST /api/sessions/{sessionID}/drafts", Chain(s.AddDraftHandler(), paramsMiddleware))
	s.Router.Handle("PATCH /api/sessions/{sessionID}/drafts/{draftID}", Chain(s.ToggleDraftHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /api/sessions/{sessionID}/drafts/{draftID}", Chain(s.RemoveDraftHandler(), paramsMiddleware))

	s.Router.Handle("POST /api/matches/{matchID}/cancel", Chain(s.CancelMatchHandler(), paramsMiddleware))
	s.Router.Handle("POST /pubsub/matches-changed", Chain(s.MatchesChangedHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
