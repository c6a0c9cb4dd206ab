package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/seungyeonleeee/triply/internal/common"
	"github.com/seungyeonleeee/triply/internal/dbx"
	"github.com/seungyeonleeee/triply/internal/domain"
	"github.com/seungyeonleeee/triply/internal/itinerary"
	"github.com/seungyeonleeee/triply/internal/server/exporter"
	"github.com/seungyeonleeee/triply/internal/server/models"
	"github.com/seungyeonleeee/triply/internal/server/repositories/checklists"
	"github.com/seungyeonleeee/triply/internal/server/repositories/items"
	"github.com/seungyeonleeee/triply/internal/server/repositories/refreshtokens"
	"github.com/seungyeonleeee/triply/internal/server/repositories/trips"
	"github.com/seungyeonleeee/triply/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error
	created   *models.User

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr    error
	deleted   []string
	createErr error
	created   []string

	purged   time.Time
	purgedN  int64
	purgeErr error
}

func (f *fakeRefreshRepo) Create(_ context.Context, _ string, token string, _ time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, token)
	return nil
}

func (f *fakeRefreshRepo) Find(context.Context, string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.delErr
}

func (f *fakeRefreshRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.purged = now
	return f.purgedN, f.purgeErr
}

// fakeTripsRepo keeps trips of every user in memory.
type fakeTripsRepo struct {
	trips map[string]domain.Trip
	err   error
}

func (f *fakeTripsRepo) own(userID, tripID string) (domain.Trip, error) {
	t, ok := f.trips[tripID]
	if !ok || t.UserID != userID {
		return domain.Trip{}, common.ErrorNotFound
	}
	return t, nil
}

func (f *fakeTripsRepo) Create(_ context.Context, trip *domain.Trip) error {
	if f.err != nil {
		return f.err
	}
	trip.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f.trips[trip.ID] = *trip
	return nil
}

func (f *fakeTripsRepo) Get(_ context.Context, userID, tripID string) (*domain.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, err := f.own(userID, tripID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (f *fakeTripsRepo) List(_ context.Context, userID string) ([]domain.Trip, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Trip
	for _, t := range f.trips {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTripsRepo) Update(_ context.Context, trip *domain.Trip) error {
	old, err := f.own(trip.UserID, trip.ID)
	if err != nil {
		return err
	}
	trip.CreatedAt = old.CreatedAt
	f.trips[trip.ID] = *trip
	return nil
}

func (f *fakeTripsRepo) Delete(_ context.Context, userID, tripID string) error {
	if _, err := f.own(userID, tripID); err != nil {
		return err
	}
	delete(f.trips, tripID)
	return nil
}

type fakeItemsRepo struct {
	trips *fakeTripsRepo
	items []domain.Item
	owner map[string]string
}

func (f *fakeItemsRepo) ListByTrip(_ context.Context, userID, tripID string) ([]domain.Item, error) {
	var out []domain.Item
	for _, it := range f.items {
		if it.TripID == tripID && f.owner[it.ID] == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemsRepo) Create(_ context.Context, userID string, item *domain.Item) error {
	if _, err := f.trips.own(userID, item.TripID); err != nil {
		return err
	}
	f.items = append(f.items, *item)
	f.owner[item.ID] = userID
	return nil
}

func (f *fakeItemsRepo) Update(_ context.Context, userID string, item *domain.Item) error {
	for i, it := range f.items {
		if it.ID == item.ID && f.owner[it.ID] == userID {
			item.TripID = it.TripID
			f.items[i] = *item
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeItemsRepo) Delete(_ context.Context, userID, itemID string) error {
	for i, it := range f.items {
		if it.ID == itemID && f.owner[it.ID] == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeChecklistsRepo struct {
	trips *fakeTripsRepo
	lines []domain.ChecklistItem
	owner map[string]string
}

func (f *fakeChecklistsRepo) ListByTrip(_ context.Context, userID, tripID string) ([]domain.ChecklistItem, error) {
	var out []domain.ChecklistItem
	for _, c := range f.lines {
		if c.TripID == tripID && f.owner[c.ID] == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeChecklistsRepo) Create(_ context.Context, userID string, item *domain.ChecklistItem) error {
	if _, err := f.trips.own(userID, item.TripID); err != nil {
		return err
	}
	f.lines = append(f.lines, *item)
	f.owner[item.ID] = userID
	return nil
}

func (f *fakeChecklistsRepo) SetChecked(_ context.Context, userID, itemID string, checked bool) error {
	for i, c := range f.lines {
		if c.ID == itemID && f.owner[c.ID] == userID {
			f.lines[i].Checked = checked
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeChecklistsRepo) Delete(_ context.Context, userID, itemID string) error {
	for i, c := range f.lines {
		if c.ID == itemID && f.owner[c.ID] == userID {
			f.lines = append(f.lines[:i], f.lines[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	t *fakeTripsRepo
	i *fakeItemsRepo
	c *fakeChecklistsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	t := &fakeTripsRepo{trips: map[string]domain.Trip{}}
	return &fakeRepoManager{
		u: &fakeUsersRepo{},
		r: &fakeRefreshRepo{},
		t: t,
		i: &fakeItemsRepo{trips: t, owner: map[string]string{}},
		c: &fakeChecklistsRepo{trips: t, owner: map[string]string{}},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) Trips(dbx.DBTX) trips.Repository                 { return m.t }
func (m *fakeRepoManager) Items(dbx.DBTX) items.Repository                 { return m.i }
func (m *fakeRepoManager) Checklists(dbx.DBTX) checklists.Repository       { return m.c }

type fakeExporter struct {
	userID string
	tl     itinerary.Timeline
	err    error
}

func (f *fakeExporter) Export(_ context.Context, userID string, tl itinerary.Timeline) (*exporter.Export, error) {
	f.userID, f.tl = userID, tl
	if f.err != nil {
		return nil, f.err
	}
	return &exporter.Export{Key: "itineraries/" + userID + "/x.json", URL: "https://signed", ExpiresAt: time.Unix(0, 0)}, nil
}
