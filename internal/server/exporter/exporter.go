package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seungyeonleeee/triply/internal/itinerary"
)

const contentType = "application/json"

// Export describes an uploaded itinerary.
type Export struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// Exporter serializes timelines and stores them under per-user keys.
type Exporter struct {
	store    ObjectStore
	validity time.Duration
	now      func() time.Time
}

func NewExporter(store ObjectStore, validity time.Duration) *Exporter {
	return &Exporter{store: store, validity: validity, now: time.Now}
}

// StorageKey returns itineraries/<user>/<yyyy>/<mm>/<dd>/<uuid>.json for the
// given moment, in UTC.
func StorageKey(userID string, at time.Time) string {
	d := at.UTC()
	return fmt.Sprintf("itineraries/%s/%04d/%02d/%02d/%s.json", userID, d.Year(), int(d.Month()), d.Day(), uuid.NewString())
}

// Export uploads tl as JSON and returns a presigned link to it.
func (e *Exporter) Export(ctx context.Context, userID string, tl itinerary.Timeline) (*Export, error) {
	body, err := json.MarshalIndent(tl, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode itinerary: %w", err)
	}

	now := e.now()
	key := StorageKey(userID, now)

	if err := e.store.PutObject(ctx, key, contentType, body); err != nil {
		return nil, err
	}

	url, err := e.store.PresignGet(ctx, key, e.validity)
	if err != nil {
		return nil, err
	}

	return &Export{Key: key, URL: url, ExpiresAt: now.Add(e.validity)}, nil
}
