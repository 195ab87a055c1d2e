package arena

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/arena-agenda/internal/agenda"
)

// OpenSession starts a draft session.
func (s *Service) OpenSession() string {
	return s.sessions.Open()
}

// CloseSession discards a session and its drafts.
func (s *Service) CloseSession(sessionID string) bool {
	return s.sessions.Close(sessionID)
}

// AddDraft adds a local booking or block to a session. The day is normalised
// like agenda days and the hour must be a wall-clock time.
func (s *Service) AddDraft(ctx context.Context, sessionID string, req DraftRequest) (agenda.Entry, error) {
	drafts, err := s.sessions.Get(sessionID)
	if err != nil {
		return agenda.Entry{}, err
	}
	if _, err := s.courts.Get(ctx, req.CourtID); err != nil {
		return agenda.Entry{}, err
	}
	day := s.resolver.ToLocalDay(req.Day)
	if day == "" {
		return agenda.Entry{}, fmt.Errorf("%w: %q", ErrInvalidDay, req.Day)
	}
	hour := s.resolver.TimeOfDay(req.Hour, "")
	if hour == "" {
		return agenda.Entry{}, fmt.Errorf("%w: hour %q", agenda.ErrIncompleteDraft, req.Hour)
	}

	var e agenda.Entry
	switch req.Kind {
	case agenda.KindBlock:
		e, err = drafts.AddBlock(req.CourtID, day, hour, req.Title)
	case agenda.KindBooking, "":
		e, err = drafts.AddBooking(agenda.BookingRequest{
			CourtID:  req.CourtID,
			Day:      day,
			Hour:     hour,
			Title:    req.Title,
			Price:    req.Price,
			Customer: req.Customer,
		})
	default:
		return agenda.Entry{}, fmt.Errorf("%w: %q", ErrUnknownDraftKind, req.Kind)
	}
	if err != nil {
		return agenda.Entry{}, err
	}
	log.Debug("Added draft", "session", sessionID, "kind", e.Kind, "courtID", e.CourtID, "day", e.Day, "hour", e.Hour)
	return e, nil
}

// ToggleDraft flips a local booking between confirmed and canceled.
func (s *Service) ToggleDraft(sessionID, draftID string) (agenda.Entry, error) {
	drafts, err := s.sessions.Get(sessionID)
	if err != nil {
		return agenda.Entry{}, err
	}
	return drafts.Toggle(draftID)
}

// RemoveDraft deletes a draft from a session.
func (s *Service) RemoveDraft(sessionID, draftID string) error {
	drafts, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	return drafts.Remove(draftID)
}

// ListDrafts returns every draft of a session.
func (s *Service) ListDrafts(sessionID string) ([]agenda.Entry, error) {
	drafts, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return drafts.List("", ""), nil
}
