package metrics

// Metrics defines the interface for collecting application metrics.
// Implementations are the Prometheus Service and the test Mock.
type Metrics interface {
	IncSlotQueries()
	IncAgendaViews()
	ObserveAgendaDuration(duration float64)
	IncMatchFetchFailures()
	AddMatchKeyCollisions(n int)
	IncScheduleFallbacks()
	IncScheduleSaves()
	IncScheduleSaveFailures()
	SetStartupTime(duration float64)
}
