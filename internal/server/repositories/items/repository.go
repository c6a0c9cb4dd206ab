// Package items stores the places, stays, memos and transport legs of trips.
package items

import (
	"context"

	"github.com/seungyeonleeee/triply/internal/domain"
)

type Repository interface {
	// ListByTrip returns the trip's items in insertion order.
	ListByTrip(ctx context.Context, userID, tripID string) ([]domain.Item, error)
	// Create inserts item into item.TripID. It reports common.ErrorNotFound
	// when that trip is not the user's.
	Create(ctx context.Context, userID string, item *domain.Item) error
	Update(ctx context.Context, userID string, item *domain.Item) error
	Delete(ctx context.Context, userID, itemID string) error
}
