package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/seungyeonleeee/triply/internal/api"
	"github.com/seungyeonleeee/triply/internal/client/client"
	"github.com/seungyeonleeee/triply/internal/client/repositories/trips"
	"github.com/seungyeonleeee/triply/internal/common"
	"github.com/seungyeonleeee/triply/internal/cryptox"
	"github.com/seungyeonleeee/triply/internal/domain"
	"github.com/seungyeonleeee/triply/internal/filex"
	"github.com/seungyeonleeee/triply/internal/logging"
	"github.com/seungyeonleeee/triply/internal/netx"
)

// TripService plans trips against the server.
//
// Every mutation is followed by a refetch of the trip detail, which is what
// the caller gets back. Fetched details are sealed with the master key and
// cached; List and Get fall back to that cache when the server is
// unreachable. Mutations are never queued offline.
type TripService interface {
	List(ctx context.Context, masterKey []byte) ([]domain.Trip, error)
	Get(ctx context.Context, tripID string, masterKey []byte) (*domain.Trip, error)
	Create(ctx context.Context, fields api.TripFields, masterKey []byte) (*domain.Trip, error)
	Update(ctx context.Context, tripID string, fields api.TripFields, masterKey []byte) (*domain.Trip, error)
	Delete(ctx context.Context, tripID string) error

	AddItem(ctx context.Context, tripID string, item domain.Item, masterKey []byte) (*domain.Trip, error)
	UpdateItem(ctx context.Context, tripID string, item domain.Item, masterKey []byte) (*domain.Trip, error)
	DeleteItem(ctx context.Context, tripID, itemID string, masterKey []byte) (*domain.Trip, error)

	AddChecklistItem(ctx context.Context, tripID, label, category string, masterKey []byte) (*domain.Trip, error)
	SetChecklistItemChecked(ctx context.Context, tripID, itemID string, checked bool, masterKey []byte) (*domain.Trip, error)
	DeleteChecklistItem(ctx context.Context, tripID, itemID string, masterKey []byte) (*domain.Trip, error)

	// Export asks the server for an itinerary export, downloads it and
	// returns the path of the written file.
	Export(ctx context.Context, tripID string) (string, error)
}

type tripService struct {
	client     client.Client
	cache      trips.Repository
	logger     logging.Logger
	httpClient *http.Client
	exportDir  string
	now        func() time.Time
	newID      func() string
}

func NewTripService(c client.Client, cache trips.Repository, exportDir string, logger logging.Logger) TripService {
	return &tripService{
		client:     c,
		cache:      cache,
		logger:     logger.With("module", "trips"),
		httpClient: http.DefaultClient,
		exportDir:  exportDir,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (s *tripService) List(ctx context.Context, masterKey []byte) ([]domain.Trip, error) {
	list, err := s.client.ListTrips(ctx)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, client.ErrUnavailable) {
		return nil, err
	}

	s.logger.Warn(ctx, "server unavailable, listing cached trips")
	cached, cerr := s.cache.List(ctx)
	if cerr != nil {
		return nil, fmt.Errorf("read cache: %w", cerr)
	}

	result := make([]domain.Trip, 0, len(cached))
	for _, c := range cached {
		var t domain.Trip
		if err := cryptox.OpenJSON(c.Payload, masterKey, &t); err != nil {
			s.logger.Warn(ctx, "skipping unreadable cached trip", "trip_id", c.ID, "error", err)
			continue
		}
		t.Items, t.Checklist = nil, nil
		result = append(result, t)
	}
	return result, nil
}

func (s *tripService) Get(ctx context.Context, tripID string, masterKey []byte) (*domain.Trip, error) {
	t, err := s.client.GetTrip(ctx, tripID)
	switch {
	case err == nil:
		s.store(ctx, t, masterKey)
		return t, nil
	case errors.Is(err, client.ErrNotFound):
		s.forget(ctx, tripID)
		return nil, err
	case errors.Is(err, client.ErrUnavailable):
		return s.cached(ctx, tripID, masterKey)
	default:
		return nil, err
	}
}

func (s *tripService) cached(ctx context.Context, tripID string, masterKey []byte) (*domain.Trip, error) {
	c, err := s.cache.Get(ctx, tripID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, client.ErrUnavailable
	}
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}

	var t domain.Trip
	if err := cryptox.OpenJSON(c.Payload, masterKey, &t); err != nil {
		return nil, fmt.Errorf("open cached trip: %w", err)
	}
	return &t, nil
}

// store and forget keep the cache in step with the server. Cache failures
// are logged and otherwise ignored.
func (s *tripService) store(ctx context.Context, t *domain.Trip, masterKey []byte) {
	sealed, err := cryptox.SealJSON(t, masterKey)
	if err == nil {
		err = s.cache.Save(ctx, trips.CachedTrip{ID: t.ID, Payload: sealed, UpdatedAt: s.now()})
	}
	if err != nil {
		s.logger.Warn(ctx, "cache trip failed", "trip_id", t.ID, "error", err)
	}
}

func (s *tripService) forget(ctx context.Context, tripID string) {
	if err := s.cache.Delete(ctx, tripID); err != nil {
		s.logger.Warn(ctx, "evict cached trip failed", "trip_id", tripID, "error", err)
	}
}

func (s *tripService) Create(ctx context.Context, fields api.TripFields, masterKey []byte) (*domain.Trip, error) {
	t, err := s.client.CreateTrip(ctx, fields)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, t.ID, masterKey)
}

func (s *tripService) Update(ctx context.Context, tripID string, fields api.TripFields, masterKey []byte) (*domain.Trip, error) {
	if err := s.client.UpdateTrip(ctx, tripID, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, tripID, masterKey)
}

func (s *tripService) Delete(ctx context.Context, tripID string) error {
	if err := s.client.DeleteTrip(ctx, tripID); err != nil {
		return err
	}
	s.forget(ctx, tripID)
	return nil
}

// AddItem assigns a fresh id when item has none.
func (s *tripService) AddItem(ctx context.Context, tripID string, item domain.Item, masterKey []byte) (*domain.Trip, error) {
	if item.ID == "" {
		item.ID = s.newID()
	}
	if _, err := s.client.AddItem(ctx, tripID, item); err != nil {
		return nil, err
	}
	return s.Get(ctx, tripID, masterKey)
}

func (s *tripService) UpdateItem(ctx context.Context, tripID string, item domain.Item, masterKey []byte) (*domain.Trip, error) {
	if err := s.client.UpdateItem(ctx, item.ID, item); err != nil {
		return nil, err
	}
	return s.Get(ctx, tripID, masterKey)
}

func (s *tripService) DeleteItem(ctx context.Context, tripID, itemID string, masterKey []byte) (*domain.Trip, error) {
	if err := s.client.DeleteItem(ctx, itemID); err != nil {
		return nil, err
	}
	return s.Get(ctx, tripID, masterKey)
}

func (s *tripService) AddChecklistItem(ctx context.Context, tripID, label, category string, masterKey []byte) (*domain.Trip, error) {
	if _, err := s.client.AddChecklistItem(ctx, tripID, label, category); err != nil {
		return nil, err
	}
	return s.Get(ctx, tripID, masterKey)
}

func (s *tripService) SetChecklistItemChecked(ctx context.Context, tripID, itemID string, checked bool, masterKey []byte) (*domain.Trip, error) {
	if err := s.client.SetChecklistItemChecked(ctx, itemID, checked); err != nil {
		return nil, err
	}
	return s.Get(ctx, tripID, masterKey)
}

func (s *tripService) DeleteChecklistItem(ctx context.Context, tripID, itemID string, masterKey []byte) (*domain.Trip, error) {
	if err := s.client.DeleteChecklistItem(ctx, itemID); err != nil {
		return nil, err
	}
	return s.Get(ctx, tripID, masterKey)
}

// exportFileName is the last element of an export key. Keys without a
// usable file name are rejected.
func exportFileName(key string) (string, error) {
	name := path.Base(key)
	switch name {
	case ".", "..", "/":
		return "", fmt.Errorf("export key %q has no file name", key)
	}
	return name, nil
}

func (s *tripService) Export(ctx context.Context, tripID string) (string, error) {
	exp, err := s.client.ExportItinerary(ctx, tripID)
	if err != nil {
		return "", err
	}

	name, err := exportFileName(exp.Key)
	if err != nil {
		return "", err
	}

	body, err := netx.Download(ctx, s.httpClient, exp.URL)
	if err != nil {
		return "", fmt.Errorf("download export: %w", err)
	}

	p, err := filex.WriteFile(s.exportDir, name, body)
	if err != nil {
		return "", err
	}
	s.logger.Info(ctx, "itinerary exported", "trip_id", tripID, "path", p)
	return p, nil
}
