package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/seungyeonleeee/triply/internal/api"
	"github.com/seungyeonleeee/triply/internal/common"
	"github.com/seungyeonleeee/triply/internal/domain"
	"github.com/seungyeonleeee/triply/internal/logging"
	"github.com/seungyeonleeee/triply/internal/server/auth"
)

type harness struct {
	users  *fakeUsers
	trips  *fakeTrips
	client api.TripPlannerClient
	conn   *grpc.ClientConn
	ctx    context.Context
}

func startServer(t *testing.T) *harness {
	t.Helper()
	h := &harness{users: &fakeUsers{}, trips: &fakeTrips{}}
	srv := NewGRPCServer("", logging.Discard(), h.users, h.trips, "secret")

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})

	token, err := auth.GenerateToken("u1", []byte("secret"), time.Minute)
	require.NoError(t, err)

	h.conn = conn
	h.client = api.NewTripPlannerClient(conn)
	h.ctx = metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)
	return h
}

func TestServer_PublicFlow(t *testing.T) {
	h := startServer(t)
	ctx := context.Background()

	reg, err := h.client.RegisterUser(ctx, &api.RegisterUserRequest{Username: "alice", Salt: []byte("s"), Verifier: []byte("v")})
	require.NoError(t, err)
	assert.Equal(t, "id-alice", reg.ID)

	salt, err := h.client.GetSalt(ctx, &api.GetSaltRequest{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, []byte("salt"), salt.Salt)

	login, err := h.client.Login(ctx, &api.LoginRequest{Username: "alice", VerifierCandidate: []byte("v")})
	require.NoError(t, err)
	assert.Equal(t, "a", login.AccessToken)

	refreshed, err := h.client.RefreshToken(ctx, &api.RefreshTokenRequest{RefreshToken: "r"})
	require.NoError(t, err)
	assert.Equal(t, "r2", refreshed.RefreshToken)

	h.users.err = common.ErrorUnauthorized
	_, err = h.client.Login(ctx, &api.LoginRequest{Username: "alice"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestServer_TripFlow(t *testing.T) {
	h := startServer(t)

	_, err := h.client.ListTrips(context.Background(), &api.ListTripsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	list, err := h.client.ListTrips(h.ctx, &api.ListTripsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Trips, 1)
	assert.Equal(t, "u1", h.trips.user)

	start := domain.NewDate(2026, 7, 1)
	created, err := h.client.CreateTrip(h.ctx, &api.CreateTripRequest{Trip: api.TripFields{
		Title: "Busan", StartDate: &start, TravelStyles: []domain.TravelStyle{domain.StyleHealing},
	}})
	require.NoError(t, err)
	assert.Equal(t, "new", created.Trip.ID)
	require.NotNil(t, h.trips.fields.StartDate)
	assert.Equal(t, "2026-07-01", h.trips.fields.StartDate.String())
	assert.Equal(t, []domain.TravelStyle{domain.StyleHealing}, h.trips.fields.TravelStyles)

	got, err := h.client.GetTrip(h.ctx, &api.GetTripRequest{TripID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "Haeundae", got.Trip.Items[0].Name)

	_, err = h.client.GetTrip(h.ctx, &api.GetTripRequest{TripID: "nope"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	item, err := h.client.AddItem(h.ctx, &api.AddItemRequest{TripID: "t1", Item: domain.Item{Name: "Market", Day: 2}})
	require.NoError(t, err)
	assert.Equal(t, "i2", item.Item.ID)
	assert.Equal(t, 2, item.Item.Day)

	line, err := h.client.AddChecklistItem(h.ctx, &api.AddChecklistItemRequest{TripID: "t1", Label: "passport"})
	require.NoError(t, err)
	assert.Equal(t, "passport", line.Item.Label)

	_, err = h.client.UpdateTrip(h.ctx, &api.UpdateTripRequest{TripID: "t1", Trip: api.TripFields{Title: "x"}})
	require.NoError(t, err)
	_, err = h.client.UpdateItem(h.ctx, &api.UpdateItemRequest{ItemID: "i1", Item: domain.Item{Name: "y"}})
	require.NoError(t, err)
	_, err = h.client.SetChecklistItemChecked(h.ctx, &api.SetChecklistItemCheckedRequest{ItemID: "c1", Checked: true})
	require.NoError(t, err)
	_, err = h.client.DeleteChecklistItem(h.ctx, &api.DeleteChecklistItemRequest{ItemID: "c1"})
	require.NoError(t, err)
	_, err = h.client.DeleteItem(h.ctx, &api.DeleteItemRequest{ItemID: "i1"})
	require.NoError(t, err)
	_, err = h.client.DeleteTrip(h.ctx, &api.DeleteTripRequest{TripID: "t1"})
	require.NoError(t, err)

	exp, err := h.client.ExportItinerary(h.ctx, &api.ExportItineraryRequest{TripID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "itineraries/u1/t1.json", exp.Key)
	assert.True(t, exp.ExpiresAt.Equal(time.Unix(1700000000, 0)))

	h.trips.err = common.ErrorValidation
	_, err = h.client.DeleteTrip(h.ctx, &api.DeleteTripRequest{TripID: "t1"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_Health(t *testing.T) {
	h := startServer(t)

	resp, err := healthpb.NewHealthClient(h.conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: api.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	srv := NewGRPCServer("127.0.0.1:99999", logging.Discard(), &fakeUsers{}, &fakeTrips{}, "secret")
	assert.Error(t, srv.Run(context.Background()))
}
