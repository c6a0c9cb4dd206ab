package grpc

import (
	"context"
	"time"

	"github.com/seungyeonleeee/triply/internal/common"
	"github.com/seungyeonleeee/triply/internal/domain"
	"github.com/seungyeonleeee/triply/internal/server/exporter"
	"github.com/seungyeonleeee/triply/internal/server/models"
	"github.com/seungyeonleeee/triply/internal/server/services"
)

type fakeUsers struct {
	err error
}

func (f *fakeUsers) Register(_ context.Context, username string, _, _ []byte) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: "id-" + username, UserName: username}, nil
}

func (f *fakeUsers) GetSalt(context.Context, string) ([]byte, error) {
	return []byte("salt"), f.err
}

func (f *fakeUsers) Login(context.Context, string, []byte) (*services.TokenPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil
}

func (f *fakeUsers) RefreshToken(_ context.Context, token string) (*services.TokenPair, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.TokenPair{AccessToken: "a2", RefreshToken: token + "2"}, nil
}

// fakeTrips records the user each call ran as and answers from a fixed trip.
type fakeTrips struct {
	user   string
	fields services.TripFields
	err    error
}

func (f *fakeTrips) seen(uid string) error {
	f.user = uid
	return f.err
}

func (f *fakeTrips) ListTrips(_ context.Context, uid string) ([]domain.Trip, error) {
	if err := f.seen(uid); err != nil {
		return nil, err
	}
	return []domain.Trip{{ID: "t1", Title: "Busan"}}, nil
}

func (f *fakeTrips) GetTrip(_ context.Context, uid, tripID string) (*domain.Trip, error) {
	if err := f.seen(uid); err != nil {
		return nil, err
	}
	if tripID != "t1" {
		return nil, common.ErrorNotFound
	}
	return &domain.Trip{ID: "t1", Title: "Busan", Items: []domain.Item{{ID: "i1", Name: "Haeundae"}}}, nil
}

func (f *fakeTrips) CreateTrip(_ context.Context, uid string, fields services.TripFields) (*domain.Trip, error) {
	if err := f.seen(uid); err != nil {
		return nil, err
	}
	f.fields = fields
	return &domain.Trip{ID: "new", Title: fields.Title}, nil
}

func (f *fakeTrips) UpdateTrip(_ context.Context, uid, _ string, fields services.TripFields) error {
	f.fields = fields
	return f.seen(uid)
}

func (f *fakeTrips) DeleteTrip(_ context.Context, uid, _ string) error { return f.seen(uid) }

func (f *fakeTrips) AddItem(_ context.Context, uid, tripID string, item domain.Item) (*domain.Item, error) {
	if err := f.seen(uid); err != nil {
		return nil, err
	}
	item.ID, item.TripID = "i2", tripID
	return &item, nil
}

func (f *fakeTrips) UpdateItem(_ context.Context, uid, _ string, _ domain.Item) error {
	return f.seen(uid)
}

func (f *fakeTrips) DeleteItem(_ context.Context, uid, _ string) error { return f.seen(uid) }

func (f *fakeTrips) AddChecklistItem(_ context.Context, uid, tripID, label, category string) (*domain.ChecklistItem, error) {
	if err := f.seen(uid); err != nil {
		return nil, err
	}
	return &domain.ChecklistItem{ID: "c1", TripID: tripID, Label: label, Category: category}, nil
}

func (f *fakeTrips) SetChecklistItemChecked(_ context.Context, uid, _ string, _ bool) error {
	return f.seen(uid)
}

func (f *fakeTrips) DeleteChecklistItem(_ context.Context, uid, _ string) error {
	return f.seen(uid)
}

func (f *fakeTrips) ExportItinerary(_ context.Context, uid, tripID string) (*exporter.Export, error) {
	if err := f.seen(uid); err != nil {
		return nil, err
	}
	return &exporter.Export{Key: "itineraries/" + uid + "/" + tripID + ".json", URL: "https://signed", ExpiresAt: time.Unix(1700000000, 0).UTC()}, nil
}
