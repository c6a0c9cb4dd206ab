package metadata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_RoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	got, err := LoadCredentials(ctx, r)
	require.NoError(t, err)
	assert.Nil(t, got)

	want := Credentials{Username: "mina", Salt: []byte{1, 2, 3}, Verifier: []byte{9, 9}}
	require.NoError(t, SaveCredentials(ctx, r, want))

	got, err = LoadCredentials(ctx, r)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestLoadCredentials_Partial(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyUsername, []byte("mina")))
	require.NoError(t, r.Set(ctx, KeySalt, []byte{1}))

	got, err := LoadCredentials(ctx, r)
	require.NoError(t, err)
	assert.Nil(t, got)
}
