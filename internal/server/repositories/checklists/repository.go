// Package checklists stores the packing checklist lines of trips.
package checklists

import (
	"context"

	"github.com/seungyeonleeee/triply/internal/domain"
)

type Repository interface {
	ListByTrip(ctx context.Context, userID, tripID string) ([]domain.ChecklistItem, error)
	Create(ctx context.Context, userID string, item *domain.ChecklistItem) error
	SetChecked(ctx context.Context, userID, itemID string, checked bool) error
	Delete(ctx context.Context, userID, itemID string) error
}
