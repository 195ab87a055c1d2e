package court

import "context"

// Repository returns court metadata.
type Repository interface {
	Get(ctx context.Context, id string) (Court, error)
	List(ctx context.Context) ([]Court, error)
	Upsert(ctx context.Context, c Court) error
}
