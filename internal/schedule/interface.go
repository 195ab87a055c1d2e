package schedule

import "context"

// Store owns the per-court weekly templates. Nothing else in the service
// touches the storage medium directly.
type Store interface {
	// Get returns the stored template and whether one exists.
	Get(ctx context.Context, courtID string) (WeeklyTemplate, bool, error)
	// Set replaces the stored template wholesale.
	Set(ctx context.Context, courtID string, tpl WeeklyTemplate) error
	// EnsureDefault returns the stored template, creating and persisting the
	// default one first if the court has none.
	EnsureDefault(ctx context.Context, courtID string) (WeeklyTemplate, error)
}
