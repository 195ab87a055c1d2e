package pubsub

import (
	"testing"
	"time"

	"github.com/mauv0809/arena-agenda/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestProcessMessage_ScheduleUpdated(t *testing.T) {
	savedAt := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	event := ScheduleUpdated{CourtID: "court-1", Template: schedule.Default(), SavedAt: savedAt}
	data, err := msgpack.Marshal(event)
	require.NoError(t, err)

	var got ScheduleUpdated
	require.NoError(t, noopClient{}.ProcessMessage(data, &got))

	assert.Equal(t, "court-1", got.CourtID)
	assert.True(t, savedAt.Equal(got.SavedAt))
	assert.Equal(t, event.Template.SlotMinutes, got.Template.SlotMinutes)
	assert.Equal(t, event.Template.Days[time.Monday], got.Template.Days[time.Monday])
	assert.False(t, got.Template.Days[time.Sunday].Enabled)
}

func TestProcessMessage_Garbage(t *testing.T) {
	var got MatchesChanged
	assert.Error(t, noopClient{}.ProcessMessage([]byte{0xc1}, &got))
}

func TestNew_WithoutProjectIsNoop(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.NoError(t, c.SendMessage(EventMatchesChanged, MatchesChanged{CourtID: "court-1"}))
	c.Close()
}

func TestMock_DecodesByDefault(t *testing.T) {
	m := NewMock()
	data, err := msgpack.Marshal(MatchesChanged{CourtID: "court-9"})
	require.NoError(t, err)

	var got MatchesChanged
	require.NoError(t, m.ProcessMessage(data, &got))
	assert.Equal(t, "court-9", got.CourtID)
	assert.Len(t, m.ProcessMessageCalls, 1)
}
