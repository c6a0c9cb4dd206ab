package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/seungyeonleeee/triply/internal/dbx"
	"github.com/seungyeonleeee/triply/internal/domain"
	"github.com/seungyeonleeee/triply/internal/itinerary"
	"github.com/seungyeonleeee/triply/internal/logging"
	"github.com/seungyeonleeee/triply/internal/server/exporter"
	"github.com/seungyeonleeee/triply/internal/server/repositories/repomanager"
)

// ItineraryExporter publishes a built timeline for download.
type ItineraryExporter interface {
	Export(ctx context.Context, userID string, tl itinerary.Timeline) (*exporter.Export, error)
}

// TripFields are the user-editable trip attributes.
type TripFields struct {
	Title        string
	StartDate    *domain.Date
	EndDate      *domain.Date
	Companions   string
	TravelStyles []domain.TravelStyle
}

// TripService owns trips and everything inside them. Every call is scoped to
// userID; a trip, item or checklist line of another user is reported as
// common.ErrorNotFound.
type TripService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	exporter    ItineraryExporter
	logger      logging.Logger
	newID       func() string
}

func NewTripService(db *sql.DB, m repomanager.RepositoryManager, exp ItineraryExporter, logger logging.Logger) *TripService {
	return &TripService{
		db:          db,
		repomanager: m,
		exporter:    exp,
		logger:      logger,
		newID:       uuid.NewString,
	}
}

// MaxTripDays bounds the date range of a trip.
const MaxTripDays = 366

func tripFrom(f TripFields) (*domain.Trip, error) {
	t := &domain.Trip{
		Title:        strings.TrimSpace(f.Title),
		StartDate:    f.StartDate,
		EndDate:      f.EndDate,
		Companions:   strings.TrimSpace(f.Companions),
		TravelStyles: f.TravelStyles,
	}
	if t.StartDate != nil && t.StartDate.IsZero() {
		t.StartDate = nil
	}
	if t.EndDate != nil && t.EndDate.IsZero() {
		t.EndDate = nil
	}
	if t.Dated() && t.EndDate.After(t.StartDate.AddDays(MaxTripDays-1)) {
		return nil, invalid("trip spans more than %d days", MaxTripDays)
	}
	if err := checkStruct(tripInput{Title: t.Title, Companions: t.Companions, TravelStyles: t.TravelStyles}); err != nil {
		return nil, err
	}
	return t, nil
}

// ListTrips returns the user's trip headers, newest first.
func (s *TripService) ListTrips(ctx context.Context, userID string) ([]domain.Trip, error) {
	trips, err := s.repomanager.Trips(s.db).List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing trips: %w", err)
	}
	return trips, nil
}

// GetTrip loads the trip with its items and checklist in one transaction.
func (s *TripService) GetTrip(ctx context.Context, userID, tripID string) (*domain.Trip, error) {
	if err := lookupID(tripID); err != nil {
		return nil, err
	}
	var trip *domain.Trip
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		t, err := s.repomanager.Trips(tx).Get(ctx, userID, tripID)
		if err != nil {
			return err
		}
		if t.Items, err = s.repomanager.Items(tx).ListByTrip(ctx, userID, tripID); err != nil {
			return err
		}
		if t.Checklist, err = s.repomanager.Checklists(tx).ListByTrip(ctx, userID, tripID); err != nil {
			return err
		}
		trip = t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error loading trip: %w", err)
	}
	return trip, nil
}

func (s *TripService) CreateTrip(ctx context.Context, userID string, f TripFields) (*domain.Trip, error) {
	trip, err := tripFrom(f)
	if err != nil {
		return nil, err
	}
	trip.ID, trip.UserID = s.newID(), userID

	if err := s.repomanager.Trips(s.db).Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("error creating trip: %w", err)
	}
	s.logger.Info(ctx, "trip created", "user_id", userID, "trip_id", trip.ID)
	return trip, nil
}

// UpdateTrip replaces every editable field of the trip.
func (s *TripService) UpdateTrip(ctx context.Context, userID, tripID string, f TripFields) error {
	if err := lookupID(tripID); err != nil {
		return err
	}
	trip, err := tripFrom(f)
	if err != nil {
		return err
	}
	trip.ID, trip.UserID = tripID, userID

	if err := s.repomanager.Trips(s.db).Update(ctx, trip); err != nil {
		return fmt.Errorf("error updating trip: %w", err)
	}
	return nil
}

// DeleteTrip removes the trip; its items and checklist go with it.
func (s *TripService) DeleteTrip(ctx context.Context, userID, tripID string) error {
	if err := lookupID(tripID); err != nil {
		return err
	}
	if err := s.repomanager.Trips(s.db).Delete(ctx, userID, tripID); err != nil {
		return fmt.Errorf("error deleting trip: %w", err)
	}
	s.logger.Info(ctx, "trip deleted", "user_id", userID, "trip_id", tripID)
	return nil
}

// sanitizeItem coerces unknown types and kinds, trims free text and checks
// the remaining constraints.
func sanitizeItem(it *domain.Item) error {
	it.Type = domain.ParseItemType(string(it.Type))
	it.TransportKind = domain.ParseTransportKind(string(it.TransportKind))
	it.Name = strings.TrimSpace(it.Name)
	it.Time = strings.TrimSpace(it.Time)
	it.Address = strings.TrimSpace(it.Address)
	if it.Day < 0 {
		it.Day = 0
	}
	if _, ok := it.Coordinates(); !ok {
		it.Lat, it.Lng = nil, nil
	}

	return checkStruct(itemInput{
		ID:       it.ID,
		Name:     it.Name,
		Time:     it.Time,
		Category: string(it.Category),
		Address:  it.Address,
		Lat:      it.Lat,
		Lng:      it.Lng,
		Memo:     it.Memo,
	})
}

// AddItem stores item in the trip. A missing item ID is generated; a
// client-supplied one must be a UUID.
func (s *TripService) AddItem(ctx context.Context, userID, tripID string, item domain.Item) (*domain.Item, error) {
	if tripID == "" {
		return nil, invalid("trip id is required")
	}
	if err := lookupID(tripID); err != nil {
		return nil, err
	}
	if err := sanitizeItem(&item); err != nil {
		return nil, err
	}
	if item.ID == "" {
		item.ID = s.newID()
	}
	item.TripID = tripID

	if err := s.repomanager.Items(s.db).Create(ctx, userID, &item); err != nil {
		return nil, fmt.Errorf("error adding item: %w", err)
	}
	return &item, nil
}

func (s *TripService) UpdateItem(ctx context.Context, userID, itemID string, item domain.Item) error {
	if err := lookupID(itemID); err != nil {
		return err
	}
	item.ID = itemID
	if err := sanitizeItem(&item); err != nil {
		return err
	}

	if err := s.repomanager.Items(s.db).Update(ctx, userID, &item); err != nil {
		return fmt.Errorf("error updating item: %w", err)
	}
	return nil
}

func (s *TripService) DeleteItem(ctx context.Context, userID, itemID string) error {
	if err := lookupID(itemID); err != nil {
		return err
	}
	if err := s.repomanager.Items(s.db).Delete(ctx, userID, itemID); err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}
	return nil
}

func (s *TripService) AddChecklistItem(ctx context.Context, userID, tripID, label, category string) (*domain.ChecklistItem, error) {
	if tripID == "" {
		return nil, invalid("trip id is required")
	}
	if err := lookupID(tripID); err != nil {
		return nil, err
	}
	item := &domain.ChecklistItem{
		ID:       s.newID(),
		TripID:   tripID,
		Label:    strings.TrimSpace(label),
		Category: strings.TrimSpace(category),
	}
	if err := checkStruct(checklistInput{Label: item.Label, Category: item.Category}); err != nil {
		return nil, err
	}

	if err := s.repomanager.Checklists(s.db).Create(ctx, userID, item); err != nil {
		return nil, fmt.Errorf("error adding checklist item: %w", err)
	}
	return item, nil
}

func (s *TripService) SetChecklistItemChecked(ctx context.Context, userID, itemID string, checked bool) error {
	if err := lookupID(itemID); err != nil {
		return err
	}
	if err := s.repomanager.Checklists(s.db).SetChecked(ctx, userID, itemID, checked); err != nil {
		return fmt.Errorf("error updating checklist item: %w", err)
	}
	return nil
}

func (s *TripService) DeleteChecklistItem(ctx context.Context, userID, itemID string) error {
	if err := lookupID(itemID); err != nil {
		return err
	}
	if err := s.repomanager.Checklists(s.db).Delete(ctx, userID, itemID); err != nil {
		return fmt.Errorf("error deleting checklist item: %w", err)
	}
	return nil
}

// ExportItinerary lays the trip out as a timeline and publishes it.
func (s *TripService) ExportItinerary(ctx context.Context, userID, tripID string) (*exporter.Export, error) {
	trip, err := s.GetTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	exp, err := s.exporter.Export(ctx, userID, itinerary.Build(*trip))
	if err != nil {
		return nil, fmt.Errorf("error exporting itinerary: %w", err)
	}
	s.logger.Info(ctx, "itinerary exported", "user_id", userID, "trip_id", tripID, "key", exp.Key)
	return exp, nil
}
