package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	SlotQueries         prometheus.Counter
	AgendaViews         prometheus.Counter
	AgendaDuration      prometheus.Histogram
	MatchFetchFailures  prometheus.Counter
	MatchKeyCollisions  prometheus.Counter
	ScheduleFallbacks   prometheus.Counter
	ScheduleSaves       prometheus.Counter
	ScheduleSaveFailure prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
