package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauv0809/arena-agenda/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := metrics.NewService(reg)

	s.IncSlotQueries()
	s.IncSlotQueries()
	s.IncAgendaViews()
	s.IncMatchFetchFailures()
	s.AddMatchKeyCollisions(3)
	s.AddMatchKeyCollisions(0)
	s.IncScheduleFallbacks()
	s.IncScheduleSaves()
	s.IncScheduleSaveFailures()
	s.SetStartupTime(1.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.SlotQueries))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.AgendaViews))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.MatchFetchFailures))
	assert.Equal(t, 3.0, testutil.ToFloat64(s.MatchKeyCollisions))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ScheduleFallbacks))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ScheduleSaves))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ScheduleSaveFailure))
	assert.Equal(t, 1.5, testutil.ToFloat64(s.StartupTimeSeconds))
}

func TestMetricsHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := metrics.NewService(reg)
	s.IncAgendaViews()
	s.ObserveAgendaDuration(0.02)

	server := httptest.NewServer(metrics.NewMetricsHandler(reg))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "arena_agenda_views_total 1")
	assert.Contains(t, string(body), "arena_agenda_build_duration_seconds_count 1")
}

func TestMock_RecordsCalls(t *testing.T) {
	m := metrics.NewMock()
	m.IncSlotQueries()
	m.AddMatchKeyCollisions(2)
	m.ObserveAgendaDuration(0.1)

	assert.Equal(t, 1, m.SlotQueries())
	assert.Equal(t, 2, m.MatchKeyCollisions())
	assert.Equal(t, []float64{0.1}, m.AgendaDurations())
}
