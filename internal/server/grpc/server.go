// Package grpc exposes the TripPlanner service over gRPC: handlers, the
// access-token interceptor, error translation and the server lifecycle.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/seungyeonleeee/triply/internal/api"
	"github.com/seungyeonleeee/triply/internal/domain"
	"github.com/seungyeonleeee/triply/internal/logging"
	"github.com/seungyeonleeee/triply/internal/server/exporter"
	"github.com/seungyeonleeee/triply/internal/server/models"
	"github.com/seungyeonleeee/triply/internal/server/services"
)

// UserService is the authentication surface the handlers need.
type UserService interface {
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// TripService is the trip surface the handlers need.
type TripService interface {
	ListTrips(ctx context.Context, userID string) ([]domain.Trip, error)
	GetTrip(ctx context.Context, userID, tripID string) (*domain.Trip, error)
	CreateTrip(ctx context.Context, userID string, f services.TripFields) (*domain.Trip, error)
	UpdateTrip(ctx context.Context, userID, tripID string, f services.TripFields) error
	DeleteTrip(ctx context.Context, userID, tripID string) error
	AddItem(ctx context.Context, userID, tripID string, item domain.Item) (*domain.Item, error)
	UpdateItem(ctx context.Context, userID, itemID string, item domain.Item) error
	DeleteItem(ctx context.Context, userID, itemID string) error
	AddChecklistItem(ctx context.Context, userID, tripID, label, category string) (*domain.ChecklistItem, error)
	SetChecklistItemChecked(ctx context.Context, userID, itemID string, checked bool) error
	DeleteChecklistItem(ctx context.Context, userID, itemID string) error
	ExportItinerary(ctx context.Context, userID, tripID string) (*exporter.Export, error)
}

type GRPCServer struct {
	api.UnimplementedTripPlannerServer
	address   string
	users     UserService
	trips     TripService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ts TripService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		trips:     ts,
		jwtSecret: []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	api.RegisterTripPlannerServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			hs.Shutdown()
			srv.GracefulStop()
		case <-done:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	err := srv.Serve(lis)
	close(done)
	return err
}
