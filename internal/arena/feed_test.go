package arena

import (
	"sync"
	"testing"
	"time"

	"github.com/mauv0809/arena-agenda/internal/agenda"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFeed_LastStoreWins(t *testing.T) {
	f := NewMatchFeed()
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	v1 := f.Store("c1", []agenda.Entry{{ID: "newer"}}, now)
	// A fetch started earlier but finishing later still overwrites.
	v2 := f.Store("c1", []agenda.Entry{{ID: "older"}}, now.Add(-time.Minute))

	snap, ok := f.Load("c1")
	require.True(t, ok)
	assert.Greater(t, v2, v1)
	assert.Equal(t, v2, snap.Version)
	assert.Equal(t, "older", snap.Entries[0].ID)
}

func TestMatchFeed_LoadReturnsCopy(t *testing.T) {
	f := NewMatchFeed()
	entries := []agenda.Entry{{ID: "m1"}}
	f.Store("c1", entries, time.Now())
	entries[0].ID = "mutated"

	snap, _ := f.Load("c1")
	snap.Entries[0].ID = "changed"

	again, _ := f.Load("c1")
	assert.Equal(t, "m1", again.Entries[0].ID)
}

func TestMatchFeed_Forget(t *testing.T) {
	f := NewMatchFeed()
	f.Store("c1", nil, time.Now())
	f.Forget("c1")
	_, ok := f.Load("c1")
	assert.False(t, ok)
}

func TestMatchFeed_ConcurrentStores(t *testing.T) {
	f := NewMatchFeed()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Store("c1", []agenda.Entry{{ID: "m"}}, time.Now())
		}()
	}
	wg.Wait()

	snap, ok := f.Load("c1")
	require.True(t, ok)
	assert.Equal(t, uint64(50), snap.Version)
}
