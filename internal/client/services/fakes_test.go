package services

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seungyeonleeee/triply/internal/api"
	"github.com/seungyeonleeee/triply/internal/client/client"
	"github.com/seungyeonleeee/triply/internal/domain"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	require.NoError(t, db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, k).Scan(&v))
	return v
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

// fakeClient is an in-memory server. Setting down makes every trip call
// fail with client.ErrUnavailable.
type fakeClient struct {
	down bool
	err  error

	CloseErr    error
	RegisterErr error
	PingErr     error
	GetSaltRet  []byte
	GetSaltErr  error
	LoginErr    error
	loggedOut   bool

	LastRegisterUser     string
	LastRegisterSalt     []byte
	LastRegisterVerifier []byte
	LastLoginUser        string
	LastLoginVerifier    []byte

	trips    map[string]*domain.Trip
	nextID   int
	lastItem domain.Item
	export   *api.ExportItineraryResponse
	getCalls int
}

func newFakeClient() *fakeClient {
	return &fakeClient{trips: map[string]*domain.Trip{}}
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Register(_ context.Context, username string, salt, verifier []byte) error {
	f.LastRegisterUser = username
	f.LastRegisterSalt = append([]byte(nil), salt...)
	f.LastRegisterVerifier = append([]byte(nil), verifier...)
	return f.RegisterErr
}

func (f *fakeClient) GetSalt(context.Context, string) ([]byte, error) {
	return append([]byte(nil), f.GetSaltRet...), f.GetSaltErr
}

func (f *fakeClient) Login(_ context.Context, username string, verifier []byte) error {
	f.LastLoginUser = username
	f.LastLoginVerifier = append([]byte(nil), verifier...)
	return f.LoginErr
}

func (f *fakeClient) Logout() { f.loggedOut = true }

func (f *fakeClient) Ping(context.Context) error { return f.PingErr }

func (f *fakeClient) check() error {
	if f.down {
		return client.ErrUnavailable
	}
	return f.err
}

func (f *fakeClient) trip(id string) (*domain.Trip, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	t, ok := f.trips[id]
	if !ok {
		return nil, client.ErrNotFound
	}
	return t, nil
}

func (f *fakeClient) ListTrips(context.Context) ([]domain.Trip, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	var out []domain.Trip
	for _, t := range f.trips {
		out = append(out, domain.Trip{ID: t.ID, Title: t.Title, StartDate: t.StartDate, EndDate: t.EndDate})
	}
	return out, nil
}

func (f *fakeClient) GetTrip(_ context.Context, id string) (*domain.Trip, error) {
	f.getCalls++
	t, err := f.trip(id)
	if err != nil {
		return nil, err
	}
	cp := *t
	return &cp, nil
}

func (f *fakeClient) CreateTrip(_ context.Context, fields api.TripFields) (*domain.Trip, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	f.nextID++
	t := &domain.Trip{
		ID:        fmt.Sprintf("trip-%d", f.nextID),
		Title:     fields.Title,
		StartDate: fields.StartDate,
		EndDate:   fields.EndDate,
		CreatedAt: time.Now(),
	}
	f.trips[t.ID] = t
	return t, nil
}

func (f *fakeClient) UpdateTrip(_ context.Context, id string, fields api.TripFields) error {
	t, err := f.trip(id)
	if err != nil {
		return err
	}
	t.Title, t.StartDate, t.EndDate = fields.Title, fields.StartDate, fields.EndDate
	t.Companions, t.TravelStyles = fields.Companions, fields.TravelStyles
	return nil
}

func (f *fakeClient) DeleteTrip(_ context.Context, id string) error {
	if _, err := f.trip(id); err != nil {
		return err
	}
	delete(f.trips, id)
	return nil
}

func (f *fakeClient) AddItem(_ context.Context, tripID string, item domain.Item) (*domain.Item, error) {
	t, err := f.trip(tripID)
	if err != nil {
		return nil, err
	}
	f.lastItem = item
	t.Items = append(t.Items, item)
	return &item, nil
}

func (f *fakeClient) UpdateItem(_ context.Context, itemID string, item domain.Item) error {
	if err := f.check(); err != nil {
		return err
	}
	for _, t := range f.trips {
		for i := range t.Items {
			if t.Items[i].ID == itemID {
				t.Items[i] = item
				return nil
			}
		}
	}
	return client.ErrNotFound
}

func (f *fakeClient) DeleteItem(_ context.Context, itemID string) error {
	if err := f.check(); err != nil {
		return err
	}
	for _, t := range f.trips {
		for i := range t.Items {
			if t.Items[i].ID == itemID {
				t.Items = append(t.Items[:i], t.Items[i+1:]...)
				return nil
			}
		}
	}
	return client.ErrNotFound
}

func (f *fakeClient) AddChecklistItem(_ context.Context, tripID, label, category string) (*domain.ChecklistItem, error) {
	t, err := f.trip(tripID)
	if err != nil {
		return nil, err
	}
	it := domain.ChecklistItem{ID: "c" + label, TripID: tripID, Label: label, Category: category}
	t.Checklist = append(t.Checklist, it)
	return &it, nil
}

func (f *fakeClient) SetChecklistItemChecked(_ context.Context, itemID string, checked bool) error {
	if err := f.check(); err != nil {
		return err
	}
	for _, t := range f.trips {
		for i := range t.Checklist {
			if t.Checklist[i].ID == itemID {
				t.Checklist[i].Checked = checked
				return nil
			}
		}
	}
	return client.ErrNotFound
}

func (f *fakeClient) DeleteChecklistItem(_ context.Context, itemID string) error {
	if err := f.check(); err != nil {
		return err
	}
	for _, t := range f.trips {
		for i := range t.Checklist {
			if t.Checklist[i].ID == itemID {
				t.Checklist = append(t.Checklist[:i], t.Checklist[i+1:]...)
				return nil
			}
		}
	}
	return client.ErrNotFound
}

func (f *fakeClient) ExportItinerary(_ context.Context, tripID string) (*api.ExportItineraryResponse, error) {
	if _, err := f.trip(tripID); err != nil {
		return nil, err
	}
	return f.export, nil
}
