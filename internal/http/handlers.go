package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/arena-agenda/internal/agenda"
	"github.com/mauv0809/arena-agenda/internal/arena"
	"github.com/mauv0809/arena-agenda/internal/calendar"
	"github.com/mauv0809/arena-agenda/internal/court"
	"github.com/mauv0809/arena-agenda/internal/match"
	"github.com/mauv0809/arena-agenda/internal/pubsub"
	"github.com/mauv0809/arena-agenda/internal/schedule"
)

const defaultDay = "today"

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ListCourtsHandler lists courts. With lat and lng the courts are ordered by
// distance and limited by the optional limit parameter.
func (s *Server) ListCourtsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("lat") == "" && q.Get("lng") == "" {
			courts, err := s.Arena.Courts(r.Context())
			if err != nil {
				writeError(w, "Failed to list courts", err)
				return
			}
			writeJSON(w, http.StatusOK, courts)
			return
		}

		lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
		lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
		if latErr != nil || lngErr != nil {
			http.Error(w, "lat and lng must both be numbers", http.StatusBadRequest)
			return
		}
		limit := 0
		if raw := q.Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				http.Error(w, "limit must be a positive number", http.StatusBadRequest)
				return
			}
			limit = parsed
		}
		nearby, err := s.Arena.NearestCourts(r.Context(), court.Coordinates{Latitude: lat, Longitude: lng}, limit)
		if err != nil {
			writeError(w, "Failed to list courts", err)
			return
		}
		writeJSON(w, http.StatusOK, nearby)
	}
}

func (s *Server) GetCourtHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := s.Arena.Court(r.Context(), r.PathValue("courtID"))
		if err != nil {
			writeError(w, "Failed to get court", err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func (s *Server) GetScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courtID := r.PathValue("courtID")
		if _, err := s.Arena.Court(r.Context(), courtID); err != nil {
			writeError(w, "Failed to get court", err)
			return
		}
		tpl, err := s.Arena.Schedule(r.Context(), courtID)
		if err != nil {
			writeError(w, "Failed to get schedule", err)
			return
		}
		writeJSON(w, http.StatusOK, tpl)
	}
}

// PutScheduleHandler replaces the weekly template of a court. With
// dry_run=true the template is only validated.
func (s *Server) PutScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courtID := r.PathValue("courtID")
		if _, err := s.Arena.Court(r.Context(), courtID); err != nil {
			writeError(w, "Failed to get court", err)
			return
		}
		var tpl schedule.WeeklyTemplate
		if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
			log.Error("Failed to decode schedule", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := s.Arena.SaveSchedule(r.Context(), courtID, tpl, isDryRunFromContext(r)); err != nil {
			writeError(w, "Failed to save schedule", err)
			return
		}
		writeJSON(w, http.StatusOK, tpl)
	}
}

func (s *Server) SlotsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courtID := r.PathValue("courtID")
		raw := r.URL.Query().Get("date")
		if raw == "" {
			raw = defaultDay
		}
		date, ok := s.Arena.Resolver().Date(raw)
		if !ok {
			writeError(w, "Invalid date", fmt.Errorf("%w: %q", arena.ErrInvalidDay, raw))
			return
		}
		slots, err := s.Arena.ListSlotsForCourtOnDate(r.Context(), courtID, date)
		if err != nil {
			writeError(w, "Failed to list slots", err)
			return
		}
		writeJSON(w, http.StatusOK, slotsResponse{CourtID: courtID, Date: date.Format(calendar.DayLayout), Slots: slots})
	}
}

// AgendaHandler returns the per-slot agenda of a court. cached=true reads
// matches from the last prefetch when there is one.
func (s *Server) AgendaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		day := q.Get("day")
		if day == "" {
			day = defaultDay
		}
		view := s.Arena.AgendaView
		if q.Get("cached") == "true" {
			view = s.Arena.CachedAgendaView
		}
		out, err := view(r.Context(), r.PathValue("courtID"), day, q.Get("session"))
		if err != nil {
			writeError(w, "Failed to build agenda", err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func (s *Server) OpenSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, sessionResponse{SessionID: s.Arena.OpenSession()})
	}
}

func (s *Server) CloseSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.Arena.CloseSession(r.PathValue("sessionID")) {
			writeError(w, "Failed to close session", agenda.ErrSessionNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) ListDraftsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drafts, err := s.Arena.ListDrafts(r.PathValue("sessionID"))
		if err != nil {
			writeError(w, "Failed to list drafts", err)
			return
		}
		writeJSON(w, http.StatusOK, drafts)
	}
}

func (s *Server) AddDraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req arena.DraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode draft", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		e, err := s.Arena.AddDraft(r.Context(), r.PathValue("sessionID"), req)
		if err != nil {
			writeError(w, "Failed to add draft", err)
			return
		}
		writeJSON(w, http.StatusCreated, e)
	}
}

func (s *Server) ToggleDraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := s.Arena.ToggleDraft(r.PathValue("sessionID"), r.PathValue("draftID"))
		if err != nil {
			writeError(w, "Failed to toggle draft", err)
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

func (s *Server) RemoveDraftHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Arena.RemoveDraft(r.PathValue("sessionID"), r.PathValue("draftID")); err != nil {
			writeError(w, "Failed to remove draft", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) CancelMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.PathValue("matchID")
		if err := s.Arena.CancelMatch(r.Context(), matchID, isDryRunFromContext(r)); err != nil {
			writeError(w, "Failed to cancel match", err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprintf(w, "Cancellation of match %s requested.", matchID)
	}
}

// MatchesChangedHandler receives Pub/Sub pushes announcing that a court's
// matches changed and refreshes that court's feed. A failed refresh is
// acknowledged anyway; the next agenda request fetches live.
func (s *Server) MatchesChangedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received matches-changed message", "body", string(bodyBytes))

		var msg pushMessage
		if err := json.Unmarshal(bodyBytes, &msg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		rawData, err := base64.StdEncoding.DecodeString(msg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		var event pubsub.MatchesChanged
		if err := s.PubSub.ProcessMessage(rawData, &event); err != nil || event.CourtID == "" {
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}

		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would have refreshed matches", "courtID", event.CourtID)
		} else if err := s.Arena.Prefetch(context.WithoutCancel(r.Context()), event.CourtID); err != nil {
			log.Warn("Failed to refresh matches after change notification", "courtID", event.CourtID, "error", err)
		}
		w.Write([]byte("OK"))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// writeError maps domain errors onto status codes. Unknown errors are 500s
// and are logged.
func writeError(w http.ResponseWriter, msg string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, court.ErrNotFound),
		errors.Is(err, agenda.ErrSessionNotFound),
		errors.Is(err, agenda.ErrDraftNotFound):
		status = http.StatusNotFound
	case errors.Is(err, arena.ErrInvalidDay),
		errors.Is(err, schedule.ErrInvalidTemplate),
		errors.Is(err, arena.ErrUnknownDraftKind),
		errors.Is(err, agenda.ErrIncompleteDraft):
		status = http.StatusBadRequest
	case errors.Is(err, agenda.ErrNotToggleable):
		status = http.StatusConflict
	case errors.Is(err, match.ErrCancelUnsupported):
		status = http.StatusNotImplemented
	}
	if status == http.StatusInternalServerError {
		log.Error(msg, "error", err)
	} else {
		log.Warn(msg, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
