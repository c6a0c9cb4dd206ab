package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/seungyeonleeee/triply/internal/api"
	"github.com/seungyeonleeee/triply/internal/server/services"
)

func (s *GRPCServer) userID(ctx context.Context) (string, error) {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return id, nil
}

func fieldsFrom(f api.TripFields) services.TripFields {
	return services.TripFields{
		Title:        f.Title,
		StartDate:    f.StartDate,
		EndDate:      f.EndDate,
		Companions:   f.Companions,
		TravelStyles: f.TravelStyles,
	}
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *api.RegisterUserRequest) (*api.RegisterUserResponse, error) {
	s.logger.Info(ctx, "Registration request")

	result, err := s.users.Register(ctx, req.Username, req.Salt, req.Verifier)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &api.RegisterUserResponse{ID: result.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *api.GetSaltRequest) (*api.GetSaltResponse, error) {
	result, err := s.users.GetSalt(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.GetSaltResponse{Salt: result}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	tokens, err := s.users.Login(ctx, req.Username, req.VerifierCandidate)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *api.RefreshTokenRequest) (*api.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) ListTrips(ctx context.Context, _ *api.ListTripsRequest) (*api.ListTripsResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	trips, err := s.trips.ListTrips(ctx, uid)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.ListTripsResponse{Trips: trips}, nil
}

func (s *GRPCServer) GetTrip(ctx context.Context, req *api.GetTripRequest) (*api.GetTripResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := s.trips.GetTrip(ctx, uid, req.TripID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.GetTripResponse{Trip: *trip}, nil
}

func (s *GRPCServer) CreateTrip(ctx context.Context, req *api.CreateTripRequest) (*api.CreateTripResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := s.trips.CreateTrip(ctx, uid, fieldsFrom(req.Trip))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.CreateTripResponse{Trip: *trip}, nil
}

func (s *GRPCServer) UpdateTrip(ctx context.Context, req *api.UpdateTripRequest) (*api.UpdateTripResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.trips.UpdateTrip(ctx, uid, req.TripID, fieldsFrom(req.Trip)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.UpdateTripResponse{}, nil
}

func (s *GRPCServer) DeleteTrip(ctx context.Context, req *api.DeleteTripRequest) (*api.DeleteTripResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.trips.DeleteTrip(ctx, uid, req.TripID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.DeleteTripResponse{}, nil
}

func (s *GRPCServer) AddItem(ctx context.Context, req *api.AddItemRequest) (*api.AddItemResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	item, err := s.trips.AddItem(ctx, uid, req.TripID, req.Item)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.AddItemResponse{Item: *item}, nil
}

func (s *GRPCServer) UpdateItem(ctx context.Context, req *api.UpdateItemRequest) (*api.UpdateItemResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.trips.UpdateItem(ctx, uid, req.ItemID, req.Item); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.UpdateItemResponse{}, nil
}

func (s *GRPCServer) DeleteItem(ctx context.Context, req *api.DeleteItemRequest) (*api.DeleteItemResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.trips.DeleteItem(ctx, uid, req.ItemID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.DeleteItemResponse{}, nil
}

func (s *GRPCServer) AddChecklistItem(ctx context.Context, req *api.AddChecklistItemRequest) (*api.AddChecklistItemResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	item, err := s.trips.AddChecklistItem(ctx, uid, req.TripID, req.Label, req.Category)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.AddChecklistItemResponse{Item: *item}, nil
}

func (s *GRPCServer) SetChecklistItemChecked(ctx context.Context, req *api.SetChecklistItemCheckedRequest) (*api.SetChecklistItemCheckedResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.trips.SetChecklistItemChecked(ctx, uid, req.ItemID, req.Checked); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.SetChecklistItemCheckedResponse{}, nil
}

func (s *GRPCServer) DeleteChecklistItem(ctx context.Context, req *api.DeleteChecklistItemRequest) (*api.DeleteChecklistItemResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.trips.DeleteChecklistItem(ctx, uid, req.ItemID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.DeleteChecklistItemResponse{}, nil
}

func (s *GRPCServer) ExportItinerary(ctx context.Context, req *api.ExportItineraryRequest) (*api.ExportItineraryResponse, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	exp, err := s.trips.ExportItinerary(ctx, uid, req.TripID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.ExportItineraryResponse{Key: exp.Key, URL: exp.URL, ExpiresAt: exp.ExpiresAt}, nil
}
