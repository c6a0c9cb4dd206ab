package client

import (
	"context"

	"github.com/seungyeonleeee/triply/internal/api"
	"github.com/seungyeonleeee/triply/internal/domain"
)

// Client is the Triply backend as seen by the client services.
type Client interface {
	Close() error
	Register(ctx context.Context, username string, salt []byte, verifier []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) error
	// Logout forgets the session tokens.
	Logout()
	Ping(ctx context.Context) error

	ListTrips(ctx context.Context) ([]domain.Trip, error)
	GetTrip(ctx context.Context, tripID string) (*domain.Trip, error)
	CreateTrip(ctx context.Context, fields api.TripFields) (*domain.Trip, error)
	UpdateTrip(ctx context.Context, tripID string, fields api.TripFields) error
	DeleteTrip(ctx context.Context, tripID string) error

	AddItem(ctx context.Context, tripID string, item domain.Item) (*domain.Item, error)
	UpdateItem(ctx context.Context, itemID string, item domain.Item) error
	DeleteItem(ctx context.Context, itemID string) error

	AddChecklistItem(ctx context.Context, tripID, label, category string) (*domain.ChecklistItem, error)
	SetChecklistItemChecked(ctx context.Context, itemID string, checked bool) error
	DeleteChecklistItem(ctx context.Context, itemID string) error

	ExportItinerary(ctx context.Context, tripID string) (*api.ExportItineraryResponse, error)
}
