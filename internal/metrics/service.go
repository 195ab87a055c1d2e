package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		SlotQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_slot_queries_total",
			Help: "The total number of slot grids generated for a court and date.",
		}),
		AgendaViews: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_agenda_views_total",
			Help: "The total number of agenda views built.",
		}),
		AgendaDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arena_agenda_build_duration_seconds",
			Help:    "The duration of building one agenda view, match fetch included.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		MatchFetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_match_fetch_failures_total",
			Help: "The total number of match fetches that failed and were replaced by an empty list.",
		}),
		MatchKeyCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_match_key_collisions_total",
			Help: "The total number of match entries that shared a court, day and hour with another match.",
		}),
		ScheduleFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_schedule_fallbacks_total",
			Help: "The total number of schedule reads served from memory after a storage failure.",
		}),
		ScheduleSaves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_schedule_saves_total",
			Help: "The total number of weekly templates saved.",
		}),
		ScheduleSaveFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arena_schedule_save_failures_total",
			Help: "The total number of weekly template saves that failed.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arena_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.SlotQueries,
		s.AgendaViews,
		s.AgendaDuration,
		s.MatchFetchFailures,
		s.MatchKeyCollisions,
		s.ScheduleFallbacks,
		s.ScheduleSaves,
		s.ScheduleSaveFailure,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncSlotQueries() {
	s.SlotQueries.Inc()
}

func (s *Service) IncAgendaViews() {
	s.AgendaViews.Inc()
}

func (s *Service) ObserveAgendaDuration(duration float64) {
	s.AgendaDuration.Observe(duration)
}

func (s *Service) IncMatchFetchFailures() {
	s.MatchFetchFailures.Inc()
}

func (s *Service) AddMatchKeyCollisions(n int) {
	if n <= 0 {
		return
	}
	s.MatchKeyCollisions.Add(float64(n))
}

func (s *Service) IncScheduleFallbacks() {
	s.ScheduleFallbacks.Inc()
}

func (s *Service) IncScheduleSaves() {
	s.ScheduleSaves.Inc()
}

func (s *Service) IncScheduleSaveFailures() {
	s.ScheduleSaveFailure.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
