package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mauv0809/arena-agenda/internal/court"
	"github.com/mauv0809/arena-agenda/internal/database"
	"github.com/mauv0809/arena-agenda/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
courts:
  - id: quadra-1
    name: Quadra 1
    arenaId: arena-centro
    arenaName: Arena Centro
    sport: beach-tennis
    latitude: -23.5505
    longitude: -46.6333
    schedule:
      slotMinutes: 90
      days:
        1: {enabled: true, open: "07:00", close: "22:00"}
        0: {enabled: false}
  - name: Quadra sem id
    arenaName: Arena Centro
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSeed(t *testing.T) {
	file, err := loadSeedFile(writeSeed(t, seedYAML))
	require.NoError(t, err)
	require.Len(t, file.Courts, 2)
	assert.Equal(t, "Arena Centro", file.Courts[0].ArenaName)
	require.NotNil(t, file.Courts[0].Schedule)
	assert.Equal(t, "07:00", file.Courts[0].Schedule.Days[time.Monday].Open)

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	result, err := seed(context.Background(), db, file)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Courts)
	assert.Equal(t, 1, result.Schedules)

	courts, err := court.New(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, courts, 2)
	for _, c := range courts {
		assert.NotEmpty(t, c.ID)
	}

	tpl, found, err := schedule.New(db).Get(context.Background(), "quadra-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 90, tpl.SlotMinutes)
	assert.False(t, tpl.Days[time.Sunday].Enabled)
}

func TestSeed_InvalidTemplateWritesNothing(t *testing.T) {
	file, err := loadSeedFile(writeSeed(t, `
courts:
  - id: ok
    name: Fine
  - id: broken
    name: Broken
    schedule:
      slotMinutes: 60
      days:
        9: {enabled: true, open: "09:00", close: "10:00"}
`))
	require.NoError(t, err)

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	_, err = seed(context.Background(), db, file)
	assert.ErrorIs(t, err, schedule.ErrInvalidTemplate)

	courts, err := court.New(db).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, courts)
}

func TestLoadSeedFile_Errors(t *testing.T) {
	_, err := loadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = loadSeedFile(writeSeed(t, "courts: [unterminated"))
	assert.Error(t, err)
}
