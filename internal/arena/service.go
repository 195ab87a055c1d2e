package arena

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/arena-agenda/internal/agenda"
	"github.com/mauv0809/arena-agenda/internal/calendar"
	"github.com/mauv0809/arena-agenda/internal/court"
	"github.com/mauv0809/arena-agenda/internal/match"
	"github.com/mauv0809/arena-agenda/internal/metrics"
	"github.com/mauv0809/arena-agenda/internal/pubsub"
	"github.com/mauv0809/arena-agenda/internal/schedule"
	"github.com/mauv0809/arena-agenda/internal/slots"
)

// Service assembles court agendas from the weekly templates, the drafts of
// a session and the match backend. Every call recomputes from its inputs.
type Service struct {
	courts    court.Repository
	schedules schedule.Store
	matches   match.Repository
	sessions  *agenda.Sessions
	resolver  *calendar.Resolver
	metrics   metrics.Metrics
	pubsub    pubsub.PubSubClient
	feed      *MatchFeed
	now       func() time.Time
}

func New(courts court.Repository, schedules schedule.Store, matches match.Repository, resolver *calendar.Resolver, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Service {
	return &Service{
		courts:    courts,
		schedules: schedules,
		matches:   matches,
		sessions:  agenda.NewSessions(),
		resolver:  resolver,
		metrics:   metrics,
		pubsub:    pubsub,
		feed:      NewMatchFeed(),
		now:       time.Now,
	}
}

// Resolver returns the calendar resolver the service normalises days with.
func (s *Service) Resolver() *calendar.Resolver {
	return s.resolver
}

// Courts lists every known court.
func (s *Service) Courts(ctx context.Context) ([]court.Court, error) {
	return s.courts.List(ctx)
}

// Court returns a single court.
func (s *Service) Court(ctx context.Context, courtID string) (court.Court, error) {
	return s.courts.Get(ctx, courtID)
}

// NearestCourts returns up to limit courts ordered by distance from origin.
func (s *Service) NearestCourts(ctx context.Context, origin court.Coordinates, limit int) ([]court.Nearby, error) {
	courts, err := s.courts.List(ctx)
	if err != nil {
		return nil, err
	}
	return court.Nearest(courts, origin, limit), nil
}

// Schedule returns the weekly template of courtID, persisting the default
// the first time the court is looked at.
func (s *Service) Schedule(ctx context.Context, courtID string) (schedule.WeeklyTemplate, error) {
	return s.schedules.EnsureDefault(ctx, courtID)
}

// ListSlotsForCourtOnDate returns the bookable start times of courtID on
// date. The weekday is read in date's location. Unknown courts yield
// court.ErrNotFound and no template is stored for them.
func (s *Service) ListSlotsForCourtOnDate(ctx context.Context, courtID string, date time.Time) ([]string, error) {
	if _, err := s.courts.Get(ctx, courtID); err != nil {
		return nil, err
	}
	return s.slotsFor(ctx, courtID, date)
}

func (s *Service) slotsFor(ctx context.Context, courtID string, date time.Time) ([]string, error) {
	tpl, err := s.schedules.EnsureDefault(ctx, courtID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule for court %s: %w", courtID, err)
	}
	s.metrics.IncSlotQueries()
	return slots.Generate(tpl, date), nil
}

// SaveSchedule validates and replaces the weekly template of courtID. A
// successful save is announced with a schedule-updated event.
func (s *Service) SaveSchedule(ctx context.Context, courtID string, tpl schedule.WeeklyTemplate, dryRun bool) error {
	if err := schedule.Validate(tpl); err != nil {
		return err
	}
	if dryRun {
		log.Info("[Dry Run] Would have saved schedule", "courtID", courtID, "slotMinutes", tpl.SlotMinutes)
		return nil
	}
	if err := s.schedules.Set(ctx, courtID, tpl); err != nil {
		s.metrics.IncScheduleSaveFailures()
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	s.metrics.IncScheduleSaves()
	log.Info("Saved schedule", "courtID", courtID, "slotMinutes", tpl.SlotMinutes)

	event := pubsub.ScheduleUpdated{CourtID: courtID, Template: tpl, SavedAt: s.now().UTC()}
	if err := s.pubsub.SendMessage(pubsub.EventScheduleUpdated, event); err != nil {
		log.Warn("Failed to publish schedule update", "courtID", courtID, "error", err)
	}
	return nil
}

// AgendaView builds the agenda of courtID on day with a live match fetch.
// day may be any value the resolver understands; an empty sessionID means
// no drafts.
func (s *Service) AgendaView(ctx context.Context, courtID, day, sessionID string) (Day, error) {
	return s.agendaView(ctx, courtID, day, sessionID, false)
}

// CachedAgendaView is AgendaView reading matches from the feed when the
// court has a stored list. It fetches live otherwise.
func (s *Service) CachedAgendaView(ctx context.Context, courtID, day, sessionID string) (Day, error) {
	return s.agendaView(ctx, courtID, day, sessionID, true)
}

func (s *Service) agendaView(ctx context.Context, courtID, day, sessionID string, useFeed bool) (Day, error) {
	start := time.Now()

	if _, err := s.courts.Get(ctx, courtID); err != nil {
		return Day{}, err
	}
	dayISO := s.resolver.ToLocalDay(day)
	date, ok := s.resolver.Date(dayISO)
	if !ok {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDay, day)
	}

	var local []agenda.Entry
	if sessionID != "" {
		drafts, err := s.sessions.Get(sessionID)
		if err != nil {
			return Day{}, err
		}
		local = drafts.List(courtID, dayISO)
	}

	grid, err := s.slotsFor(ctx, courtID, date)
	if err != nil {
		return Day{}, err
	}

	out := Day{CourtID: courtID, Day: dayISO}
	var matches []agenda.Entry
	if snap, ok := s.feed.Load(courtID); useFeed && ok {
		matches = snap.Entries
		out.MatchesFetchedAt = snap.FetchedAt.In(s.resolver.Location()).Format(time.RFC3339)
	} else {
		matches = s.fetchMatches(ctx, courtID)
	}

	merged, report := agenda.MergeWithReport(local, matches, courtID, dayISO)
	if report.Collisions > 0 {
		log.Warn("Several matches share a slot, keeping the last one", "courtID", courtID, "day", dayISO, "collisions", report.Collisions)
		s.metrics.AddMatchKeyCollisions(report.Collisions)
	}

	out.Slots = agenda.BuildView(grid, merged).Ordered(grid)
	out.OffGrid = agenda.OffGrid(grid, merged)
	if out.OffGrid == nil {
		out.OffGrid = []agenda.Entry{}
	}

	s.metrics.IncAgendaViews()
	s.metrics.ObserveAgendaDuration(time.Since(start).Seconds())
	log.Debug("Built agenda", "courtID", courtID, "day", dayISO, "slots", len(grid), "local", len(local), "matches", len(matches), "offGrid", len(out.OffGrid))
	return out, nil
}

// fetchMatches asks the match repository once. A failure yields an empty
// list so the agenda still renders from the template and drafts.
func (s *Service) fetchMatches(ctx context.Context, courtID string) []agenda.Entry {
	records, err := s.matches.ListByCourt(ctx, courtID)
	if err != nil {
		log.Warn("Failed to fetch matches, showing agenda without them", "courtID", courtID, "error", err)
		s.metrics.IncMatchFetchFailures()
		return []agenda.Entry{}
	}
	entries := match.ToEntries(records, s.resolver)
	s.feed.Store(courtID, entries, s.now())
	return entries
}

// Prefetch refreshes the stored match list of courtID. Concurrent prefetches
// are not coordinated: whichever finishes last is what the feed keeps.
func (s *Service) Prefetch(ctx context.Context, courtID string) error {
	records, err := s.matches.ListByCourt(ctx, courtID)
	if err != nil {
		s.metrics.IncMatchFetchFailures()
		return fmt.Errorf("failed to prefetch matches for court %s: %w", courtID, err)
	}
	entries := match.ToEntries(records, s.resolver)
	version := s.feed.Store(courtID, entries, s.now())
	log.Info("Prefetched matches", "courtID", courtID, "count", len(entries), "version", version)
	return nil
}

// CancelMatch asks the match backend to cancel matchID. Nothing is changed
// locally; the agenda picks up the new status on its next fetch.
func (s *Service) CancelMatch(ctx context.Context, matchID string, dryRun bool) error {
	if strings.TrimSpace(matchID) == "" {
		return errors.New("match id is required")
	}
	if dryRun {
		log.Info("[Dry Run] Would have canceled match", "matchID", matchID)
		return nil
	}
	if err := s.matches.Cancel(ctx, matchID); err != nil {
		return fmt.Errorf("failed to cancel match %s: %w", matchID, err)
	}
	log.Info("Canceled match", "matchID", matchID)
	return nil
}
