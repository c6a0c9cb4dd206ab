package trips

import (
	"context"
	"time"
)

// CachedTrip is one sealed trip snapshot.
type CachedTrip struct {
	ID        string
	Payload   []byte
	UpdatedAt time.Time
}

type Repository interface {
	// Save inserts or replaces the snapshot for c.ID.
	Save(ctx context.Context, c CachedTrip) error
	// Get returns common.ErrorNotFound when the trip was never cached.
	Get(ctx context.Context, id string) (*CachedTrip, error)
	// List returns every snapshot, most recently updated first.
	List(ctx context.Context) ([]CachedTrip, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}
