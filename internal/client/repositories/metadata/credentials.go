package metadata

import (
	"context"
	"fmt"
)

// Credentials are what an offline login checks a password against.
type Credentials struct {
	Username string
	Salt     []byte
	Verifier []byte
}

// LoadCredentials returns the stored credentials, or nil when any part is
// missing.
func LoadCredentials(ctx context.Context, r Repository) (*Credentials, error) {
	values := make([][]byte, 3)
	for i, key := range []string{KeyUsername, KeySalt, KeyVerifier} {
		v, err := r.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("load credentials: %w", err)
		}
		if v == nil {
			return nil, nil
		}
		values[i] = v
	}
	return &Credentials{Username: string(values[0]), Salt: values[1], Verifier: values[2]}, nil
}

// SaveCredentials overwrites the stored credentials.
func SaveCredentials(ctx context.Context, r Repository, c Credentials) error {
	pairs := []struct {
		key   string
		value []byte
	}{
		{KeyUsername, []byte(c.Username)},
		{KeySalt, c.Salt},
		{KeyVerifier, c.Verifier},
	}
	for _, p := range pairs {
		if err := r.Set(ctx, p.key, p.value); err != nil {
			return fmt.Errorf("save credentials: %w", err)
		}
	}
	return nil
}
