package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	slotQueries         int
	agendaViews         int
	agendaDurations     []float64
	matchFetchFailures  int
	matchKeyCollisions  int
	scheduleFallbacks   int
	scheduleSaves       int
	scheduleSaveFailure int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		agendaDurations: make([]float64, 0),
	}
}

var _ Metrics = (*Mock)(nil)

func (m *Mock) IncSlotQueries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slotQueries++
}

func (m *Mock) IncAgendaViews() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agendaViews++
}

func (m *Mock) ObserveAgendaDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agendaDurations = append(m.agendaDurations, duration)
}

func (m *Mock) IncMatchFetchFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchFetchFailures++
}

func (m *Mock) AddMatchKeyCollisions(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchKeyCollisions += n
}

func (m *Mock) IncScheduleFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduleFallbacks++
}

func (m *Mock) IncScheduleSaves() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduleSaves++
}

func (m *Mock) IncScheduleSaveFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduleSaveFailure++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// SlotQueries returns the number of times IncSlotQueries was called.
func (m *Mock) SlotQueries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slotQueries
}

// AgendaViews returns the number of times IncAgendaViews was called.
func (m *Mock) AgendaViews() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.agendaViews
}

// AgendaDurations returns every observed agenda build duration.
func (m *Mock) AgendaDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.agendaDurations...)
}

// MatchFetchFailures returns the number of times IncMatchFetchFailures was called.
func (m *Mock) MatchFetchFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchFetchFailures
}

// MatchKeyCollisions returns the sum passed to AddMatchKeyCollisions.
func (m *Mock) MatchKeyCollisions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchKeyCollisions
}

// ScheduleFallbacks returns the number of times IncScheduleFallbacks was called.
func (m *Mock) ScheduleFallbacks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduleFallbacks
}

// ScheduleSaves returns the number of times IncScheduleSaves was called.
func (m *Mock) ScheduleSaves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduleSaves
}

// ScheduleSaveFailures returns the number of times IncScheduleSaveFailures was called.
func (m *Mock) ScheduleSaveFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduleSaveFailure
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
