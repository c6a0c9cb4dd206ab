package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/seungyeonleeee/triply/internal/api"
	"github.com/seungyeonleeee/triply/internal/common"
	"github.com/seungyeonleeee/triply/internal/logging"
	"github.com/seungyeonleeee/triply/internal/server/auth"
)

func newTestServer(secret string) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Discard(), &fakeUsers{}, &fakeTrips{}, secret)
}

func withToken(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AccessTokenHeaderName, token))
}

func TestInterceptor_PublicMethodsSkipAuth(t *testing.T) {
	s := newTestServer("secret")

	for method := range publicMethods {
		called := false
		_, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: method},
			func(ctx context.Context, req any) (any, error) {
				called = true
				_, ok := UserIDFromContext(ctx)
				assert.False(t, ok)
				return "ok", nil
			})
		require.NoError(t, err, method)
		assert.True(t, called, method)
	}
}

func TestInterceptor_ProtectedMethods(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: api.MethodListTrips}

	valid, err := auth.GenerateToken("u1", []byte("secret"), time.Minute)
	require.NoError(t, err)
	expired, err := auth.GenerateToken("u1", []byte("secret"), -time.Minute)
	require.NoError(t, err)
	foreign, err := auth.GenerateToken("u1", []byte("other"), time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name    string
		ctx     context.Context
		wantMsg string
	}{
		{"no metadata", context.Background(), "missing token"},
		{"empty token", withToken(""), "missing token"},
		{"expired", withToken(expired), "token expired"},
		{"wrong secret", withToken(foreign), "invalid token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.accessTokenInterceptor(tt.ctx, nil, info, func(context.Context, any) (any, error) {
				t.Fatal("handler must not run")
				return nil, nil
			})
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, codes.Unauthenticated, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}

	resp, err := s.accessTokenInterceptor(withToken(valid), nil, info, func(ctx context.Context, _ any) (any, error) {
		uid, ok := UserIDFromContext(ctx)
		require.True(t, ok)
		return uid, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", resp)
}

func TestHandlers_RequireUser(t *testing.T) {
	s := newTestServer("secret")
	_, err := s.ListTrips(context.Background(), &api.ListTripsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
