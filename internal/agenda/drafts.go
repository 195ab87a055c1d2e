package agenda

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var (
	ErrDraftNotFound   = errors.New("draft entry not found")
	ErrNotToggleable   = errors.New("only local bookings can be toggled")
	ErrSessionNotFound = errors.New("draft session not found")
	ErrIncompleteDraft = errors.New("draft needs court, day and hour")
)

// Drafts holds the local bookings and blocks of one session. Nothing here is
// persisted; closing the session discards it.
type Drafts struct {
	mu      sync.Mutex
	entries map[string]Entry // by entry ID
	byKey   map[Key]string
}

// NewDrafts creates an empty draft set.
func NewDrafts() *Drafts {
	return &Drafts{
		entries: make(map[string]Entry),
		byKey:   make(map[Key]string),
	}
}

// BookingRequest is the payload of a manual booking.
type BookingRequest struct {
	CourtID  string  `json:"courtId"`
	Day      string  `json:"day"`
	Hour     string  `json:"hour"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Customer string  `json:"customer"`
}

// AddBooking drafts a confirmed manual booking. A previous local entry on the
// same key is replaced.
func (d *Drafts) AddBooking(req BookingRequest) (Entry, error) {
	return d.add(Entry{
		Kind:     KindBooking,
		Source:   SourceLocal,
		CourtID:  req.CourtID,
		Day:      req.Day,
		Hour:     req.Hour,
		Status:   StatusConfirmed,
		Title:    req.Title,
		Price:    req.Price,
		Customer: req.Customer,
	})
}

// AddBlock drafts a block that takes the slot out of availability.
func (d *Drafts) AddBlock(courtID, day, hour, reason string) (Entry, error) {
	return d.add(Entry{
		Kind:    KindBlock,
		Source:  SourceLocal,
		CourtID: courtID,
		Day:     day,
		Hour:    hour,
		Status:  StatusBlocked,
		Title:   reason,
	})
}

func (d *Drafts) add(e Entry) (Entry, error) {
	if strings.TrimSpace(e.CourtID) == "" || strings.TrimSpace(e.Day) == "" || strings.TrimSpace(e.Hour) == "" {
		return Entry{}, ErrIncompleteDraft
	}
	e.ID = uuid.NewString()

	d.mu.Lock()
	defer d.mu.Unlock()
	if prev, ok := d.byKey[e.Key()]; ok {
		delete(d.entries, prev)
		log.Debug("Replaced local draft on occupied key", "previous", prev, "hour", e.Hour)
	}
	d.entries[e.ID] = e
	d.byKey[e.Key()] = e.ID
	return e, nil
}

// Toggle flips a local booking between confirmed and canceled.
func (d *Drafts) Toggle(id string) (Entry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrDraftNotFound, id)
	}
	if e.Kind != KindBooking {
		return Entry{}, ErrNotToggleable
	}
	if e.Status == StatusCanceled {
		e.Status = StatusConfirmed
	} else {
		e.Status = StatusCanceled
	}
	d.entries[id] = e
	return e, nil
}

// Remove deletes a draft, returning its slot to free.
func (d *Drafts) Remove(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrDraftNotFound, id)
	}
	delete(d.entries, id)
	delete(d.byKey, e.Key())
	return nil
}

// List returns the drafts for courtID on day ordered by hour. Empty courtID
// or day match everything.
func (d *Drafts) List(courtID, day string) []Entry {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Entry, 0, len(d.entries))
	for _, e := range d.entries {
		if courtID != "" && e.CourtID != courtID {
			continue
		}
		if day != "" && e.Day != day {
			continue
		}
		out = append(out, e)
	}
	sortByHour(out)
	return out
}

func sortByHour(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := strings.Compare(a.Day, b.Day); c != 0 {
			return c
		}
		if c := strings.Compare(a.Hour, b.Hour); c != 0 {
			return c
		}
		return strings.Compare(a.CourtID, b.CourtID)
	})
}

const (
	// DefaultSessionTTL is how long a session may sit unused before it is dropped.
	DefaultSessionTTL = 2 * time.Hour
	// DefaultMaxSessions caps the number of open sessions.
	DefaultMaxSessions = 1000
)

type session struct {
	drafts   *Drafts
	lastUsed time.Time
}

// Sessions tracks the draft sets of open agenda sessions. Sessions idle for
// longer than the TTL are discarded, and opening a session beyond the cap
// evicts the least recently used one.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	max      int
	now      func() time.Time
}

// NewSessions creates an empty registry with the default TTL and cap.
func NewSessions() *Sessions {
	return &Sessions{
		sessions: make(map[string]*session),
		ttl:      DefaultSessionTTL,
		max:      DefaultMaxSessions,
		now:      time.Now,
	}
}

// WithLimits sets the idle TTL and the session cap. Non-positive values keep
// the current setting.
func (s *Sessions) WithLimits(ttl time.Duration, max int) *Sessions {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ttl > 0 {
		s.ttl = ttl
	}
	if max > 0 {
		s.max = max
	}
	return s
}

// WithClock replaces the time source used for expiry.
func (s *Sessions) WithClock(now func() time.Time) *Sessions {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// Open starts a new session and returns its ID.
func (s *Sessions) Open() string {
	id := uuid.NewString()
	s.mu.Lock()
	now := s.now()
	s.pruneLocked(now)
	for len(s.sessions) >= s.max {
		s.evictOldestLocked()
	}
	s.sessions[id] = &session{drafts: NewDrafts(), lastUsed: now}
	s.mu.Unlock()
	log.Debug("Opened draft session", "session", id)
	return id
}

// Get returns the drafts of an open session and marks it as used.
func (s *Sessions) Get(id string) (*Drafts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	sess, ok := s.sessions[id]
	if ok && now.Sub(sess.lastUsed) > s.ttl {
		delete(s.sessions, id)
		log.Debug("Draft session expired", "session", id)
		ok = false
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	sess.lastUsed = now
	return sess.drafts, nil
}

// Close discards a session and all of its drafts.
func (s *Sessions) Close(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Len reports the number of sessions currently held, expired ones included
// until the next Open prunes them.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Sessions) pruneLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastUsed) > s.ttl {
			delete(s.sessions, id)
			log.Debug("Draft session expired", "session", id)
		}
	}
}

func (s *Sessions) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastUsed.Before(oldest) {
			oldestID, oldest = id, sess.lastUsed
		}
	}
	delete(s.sessions, oldestID)
	log.Warn("Too many draft sessions, evicted the least recently used", "session", oldestID)
}
