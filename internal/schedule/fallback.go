package schedule

import (
	"context"

	"github.com/charmbracelet/log"
)

// fallbackStore serves reads from an in-memory copy whenever the persistent
// store is unavailable, so a storage outage degrades to default templates for
// the session instead of failing the agenda. Writes are never swallowed.
type fallbackStore struct {
	primary    Store
	memory     Store
	onFallback func()
}

// WithFallback wraps primary. onFallback, if non-nil, is called every time a
// read had to be served from memory.
func WithFallback(primary Store, onFallback func()) Store {
	return &fallbackStore{
		primary:    primary,
		memory:     NewMemory(),
		onFallback: onFallback,
	}
}

func (f *fallbackStore) Get(ctx context.Context, courtID string) (WeeklyTemplate, bool, error) {
	tpl, ok, err := f.primary.Get(ctx, courtID)
	if err == nil {
		return tpl, ok, nil
	}
	log.Warn("Schedule storage unavailable, serving in-memory template", "courtID", courtID, "error", err)
	f.fellBack()
	return f.memory.Get(ctx, courtID)
}

func (f *fallbackStore) Set(ctx context.Context, courtID string, tpl WeeklyTemplate) error {
	if err := f.primary.Set(ctx, courtID, tpl); err != nil {
		return err
	}
	// Keep the session copy in line with what was persisted.
	return f.memory.Set(ctx, courtID, tpl)
}

func (f *fallbackStore) EnsureDefault(ctx context.Context, courtID string) (WeeklyTemplate, error) {
	tpl, err := f.primary.EnsureDefault(ctx, courtID)
	if err == nil {
		return tpl, nil
	}
	log.Warn("Schedule storage unavailable, using in-memory default", "courtID", courtID, "error", err)
	f.fellBack()
	return f.memory.EnsureDefault(ctx, courtID)
}

func (f *fallbackStore) fellBack() {
	if f.onFallback != nil {
		f.onFallback()
	}
}
