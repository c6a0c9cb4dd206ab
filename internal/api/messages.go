package api

import (
	"time"

	"github.com/seungyeonleeee/triply/internal/domain"
)

type RegisterUserRequest struct {
	Username string `json:"username"`
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`
}

type RegisterUserResponse struct {
	ID string `json:"id"`
}

type GetSaltRequest struct {
	Username string `json:"username"`
}

type GetSaltResponse struct {
	Salt []byte `json:"salt"`
}

type LoginRequest struct {
	Username          string `json:"username"`
	VerifierCandidate []byte `json:"verifierCandidate"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TripFields are the user-editable attributes of a trip. UpdateTrip
// replaces all of them.
type TripFields struct {
	Title        string               `json:"title"`
	StartDate    *domain.Date         `json:"startDate,omitempty"`
	EndDate      *domain.Date         `json:"endDate,omitempty"`
	Companions   string               `json:"companions,omitempty"`
	TravelStyles []domain.TravelStyle `json:"travelStyles,omitempty"`
}

type ListTripsRequest struct{}

// ListTripsResponse carries trip summaries, newest first, without items or
// checklist.
type ListTripsResponse struct {
	Trips []domain.Trip `json:"trips"`
}

type GetTripRequest struct {
	TripID string `json:"tripId"`
}

type GetTripResponse struct {
	Trip domain.Trip `json:"trip"`
}

type CreateTripRequest struct {
	Trip TripFields `json:"trip"`
}

type CreateTripResponse struct {
	Trip domain.Trip `json:"trip"`
}

type UpdateTripRequest struct {
	TripID string     `json:"tripId"`
	Trip   TripFields `json:"trip"`
}

type UpdateTripResponse struct{}

type DeleteTripRequest struct {
	TripID string `json:"tripId"`
}

type DeleteTripResponse struct{}

type AddItemRequest struct {
	TripID string      `json:"tripId"`
	Item   domain.Item `json:"item"`
}

type AddItemResponse struct {
	Item domain.Item `json:"item"`
}

type UpdateItemRequest struct {
	ItemID string      `json:"itemId"`
	Item   domain.Item `json:"item"`
}

type UpdateItemResponse struct{}

type DeleteItemRequest struct {
	ItemID string `json:"itemId"`
}

type DeleteItemResponse struct{}

type AddChecklistItemRequest struct {
	TripID   string `json:"tripId"`
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
}

type AddChecklistItemResponse struct {
	Item domain.ChecklistItem `json:"item"`
}

type SetChecklistItemCheckedRequest struct {
	ItemID  string `json:"itemId"`
	Checked bool   `json:"checked"`
}

type SetChecklistItemCheckedResponse struct{}

type DeleteChecklistItemRequest struct {
	ItemID string `json:"itemId"`
}

type DeleteChecklistItemResponse struct{}

type ExportItineraryRequest struct {
	TripID string `json:"tripId"`
}

// ExportItineraryResponse points at the uploaded itinerary. URL is a
// presigned GET that stops working at ExpiresAt.
type ExportItineraryResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
