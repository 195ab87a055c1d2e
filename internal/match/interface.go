package match

import "context"

// Repository is the source of authoritative match reservations.
type Repository interface {
	// ListByCourt returns the matches booked on courtID.
	ListByCourt(ctx context.Context, courtID string) ([]Record, error)
	// Cancel asks the backend to cancel a match. Matches are never changed
	// locally.
	Cancel(ctx context.Context, matchID string) error
}
