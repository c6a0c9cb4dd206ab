// Package trips stores trip headers: title, dates, companions and styles.
// Items and checklist lines live in their own tables.
package trips

import (
	"context"

	"github.com/seungyeonleeee/triply/internal/domain"
)

// Repository scopes every query to the owning user; a trip that exists but
// belongs to someone else is reported as common.ErrorNotFound.
type Repository interface {
	// Create inserts trip, whose ID and UserID must be set, and fills in
	// CreatedAt.
	Create(ctx context.Context, trip *domain.Trip) error
	Get(ctx context.Context, userID, tripID string) (*domain.Trip, error)
	// List returns the user's trips newest first.
	List(ctx context.Context, userID string) ([]domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) error
	// Delete removes the trip with its items and checklist.
	Delete(ctx context.Context, userID, tripID string) error
}
