package arena

import (
	"sync"
	"time"

	"github.com/mauv0809/arena-agenda/internal/agenda"
)

// Snapshot is the match list of a court as of one fetch.
type Snapshot struct {
	Entries   []agenda.Entry
	FetchedAt time.Time
	Version   uint64
}

// MatchFeed keeps the most recently stored match list per court. Stores are
// last-write-wins: a fetch that completes late overwrites a newer one, so
// staleness is bounded only by how recently some fetch finished.
type MatchFeed struct {
	mu      sync.RWMutex
	courts  map[string]Snapshot
	version uint64
}

func NewMatchFeed() *MatchFeed {
	return &MatchFeed{courts: make(map[string]Snapshot)}
}

// Store replaces the list of courtID and returns the version it was stored as.
func (f *MatchFeed) Store(courtID string, entries []agenda.Entry, fetchedAt time.Time) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.version++
	f.courts[courtID] = Snapshot{
		Entries:   append([]agenda.Entry(nil), entries...),
		FetchedAt: fetchedAt,
		Version:   f.version,
	}
	return f.version
}

// Load returns a copy of the stored list of courtID.
func (f *MatchFeed) Load(courtID string) (Snapshot, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	snap, ok := f.courts[courtID]
	if !ok {
		return Snapshot{}, false
	}
	snap.Entries = append([]agenda.Entry(nil), snap.Entries...)
	return snap, true
}

// Forget drops the list of courtID.
func (f *MatchFeed) Forget(courtID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.courts, courtID)
}
