package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/seungyeonleeee/triply/internal/api"
	"github.com/seungyeonleeee/triply/internal/common"
	"github.com/seungyeonleeee/triply/internal/domain"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      api.TripPlannerClient
	health      healthpb.HealthClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

// accessTokenInterceptor attaches the access token and, when the server
// reports it expired, refreshes the pair once and retries the call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := s.tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

// NewTripPlannerClient dials endpointURL lazily. Each call is bounded by
// timeout unless the caller's context ends sooner; zero disables the bound.
func NewTripPlannerClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewTripPlannerClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, userName string, salt []byte, verifier []byte) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.RegisterUser(ctx, &api.RegisterUserRequest{Username: userName, Salt: salt, Verifier: verifier})
	return s.mapError(err)
}

func (s *GRPCClient) GetSalt(ctx context.Context, userName string) ([]byte, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &api.GetSaltRequest{Username: userName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

func (s *GRPCClient) Login(ctx context.Context, userName string, verifier []byte) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &api.LoginRequest{Username: userName, VerifierCandidate: verifier})
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

// Ping asks the standard health service whether TripPlanner is serving.
func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: api.ServiceName})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListTrips(ctx, &api.ListTripsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Trips, nil
}

func (s *GRPCClient) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetTrip(ctx, &api.GetTripRequest{TripID: tripID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &resp.Trip, nil
}

func (s *GRPCClient) CreateTrip(ctx context.Context, fields api.TripFields) (*domain.Trip, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CreateTrip(ctx, &api.CreateTripRequest{Trip: fields})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &resp.Trip, nil
}

func (s *GRPCClient) UpdateTrip(ctx context.Context, tripID string, fields api.TripFields) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.UpdateTrip(ctx, &api.UpdateTripRequest{TripID: tripID, Trip: fields})
	return s.mapError(err)
}

func (s *GRPCClient) DeleteTrip(ctx context.Context, tripID string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.DeleteTrip(ctx, &api.DeleteTripRequest{TripID: tripID})
	return s.mapError(err)
}

func (s *GRPCClient) AddItem(ctx context.Context, tripID string, item domain.Item) (*domain.Item, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.AddItem(ctx, &api.AddItemRequest{TripID: tripID, Item: item})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &resp.Item, nil
}

func (s *GRPCClient) UpdateItem(ctx context.Context, itemID string, item domain.Item) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.UpdateItem(ctx, &api.UpdateItemRequest{ItemID: itemID, Item: item})
	return s.mapError(err)
}

func (s *GRPCClient) DeleteItem(ctx context.Context, itemID string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.DeleteItem(ctx, &api.DeleteItemRequest{ItemID: itemID})
	return s.mapError(err)
}

func (s *GRPCClient) AddChecklistItem(ctx context.Context, tripID, label, category string) (*domain.ChecklistItem, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.AddChecklistItem(ctx, &api.AddChecklistItemRequest{TripID: tripID, Label: label, Category: category})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &resp.Item, nil
}

func (s *GRPCClient) SetChecklistItemChecked(ctx context.Context, itemID string, checked bool) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.SetChecklistItemChecked(ctx, &api.SetChecklistItemCheckedRequest{ItemID: itemID, Checked: checked})
	return s.mapError(err)
}

func (s *GRPCClient) DeleteChecklistItem(ctx context.Context, itemID string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.DeleteChecklistItem(ctx, &api.DeleteChecklistItemRequest{ItemID: itemID})
	return s.mapError(err)
}

func (s *GRPCClient) ExportItinerary(ctx context.Context, tripID string) (*api.ExportItineraryResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ExportItinerary(ctx, &api.ExportItineraryRequest{TripID: tripID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUnavailable
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.AlreadyExists:
		return ErrAlreadyExists
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
