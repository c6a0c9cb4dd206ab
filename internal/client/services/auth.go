// Package services holds the client's application services: authentication
// with an offline fallback, and trip planning backed by a sealed local cache.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"fmt"

	"github.com/seungyeonleeee/triply/internal/client/client"
	"github.com/seungyeonleeee/triply/internal/client/repositories/metadata"
	"github.com/seungyeonleeee/triply/internal/client/repositories/trips"
	"github.com/seungyeonleeee/triply/internal/common"
	"github.com/seungyeonleeee/triply/internal/cryptox"
	"github.com/seungyeonleeee/triply/internal/dbx"
)

// AuthService defines authentication operations for the REPL.
//
// OnlineLogin authenticates against the server and caches what OfflineLogin
// needs. Both return the user's master key, which seals the trip cache.
type AuthService interface {
	OfflineLogin(ctx context.Context, username string, password []byte) ([]byte, error)
	OnlineLogin(ctx context.Context, username string, password []byte) ([]byte, error)
	Register(ctx context.Context, username string, password []byte) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	// Logout forgets the session and wipes everything cached locally.
	Logout(ctx context.Context) error
	ClearOfflineData(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

// OfflineLogin checks password against the verifier cached by the last
// successful OnlineLogin. It returns client.ErrLocalDataNotAvailable when
// nothing is cached and client.ErrUnauthorized on a mismatch.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) ([]byte, error) {
	saved, err := metadata.LoadCredentials(ctx, metadata.NewSQLiteRepository(a.db))
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, client.ErrLocalDataNotAvailable
	}
	if saved.Username != username {
		return nil, client.ErrUnauthorized
	}

	masterKey := cryptox.DeriveMasterKey(password, saved.Salt)
	if subtle.ConstantTimeCompare(saved.Verifier, cryptox.MakeVerifier(masterKey)) == 0 {
		common.WipeByteArray(masterKey)
		return nil, client.ErrUnauthorized
	}
	return masterKey, nil
}

func (a *authService) OnlineLogin(ctx context.Context, username string, password []byte) ([]byte, error) {
	salt, err := a.client.GetSalt(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get salt error: %w", err)
	}

	masterKey := cryptox.DeriveMasterKey(password, salt)
	verifier := cryptox.MakeVerifier(masterKey)

	if err := a.client.Login(ctx, username, verifier); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.saveOfflineData(ctx, username, salt, verifier); err != nil {
		return nil, fmt.Errorf("offline data saving error: %w", err)
	}
	return masterKey, nil
}

// saveOfflineData stores the credentials for OfflineLogin. Trips cached for
// a different user are dropped since the new key cannot open them.
func (a *authService) saveOfflineData(ctx context.Context, username string, salt, verifier []byte) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		meta := metadata.NewSQLiteRepository(tx)

		prev, err := metadata.LoadCredentials(ctx, meta)
		if err != nil {
			return err
		}
		if prev != nil && prev.Username != username {
			if err := trips.NewSQLiteRepository(tx).Clear(ctx); err != nil {
				return err
			}
		}

		return metadata.SaveCredentials(ctx, meta, metadata.Credentials{
			Username: username,
			Salt:     salt,
			Verifier: verifier,
		})
	})
}

// Register creates the account with a fresh salt. Only the salt and the
// verifier reach the server.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	salt := cryptox.NewSalt()
	key := cryptox.DeriveMasterKey(password, salt)

	return a.client.Register(ctx, username, salt, cryptox.MakeVerifier(key))
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.Logout()
	return a.ClearOfflineData(ctx)
}

func (a *authService) ClearOfflineData(ctx context.Context) error {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := metadata.NewSQLiteRepository(tx).Clear(ctx); err != nil {
			return err
		}
		return trips.NewSQLiteRepository(tx).Clear(ctx)
	})
	if err != nil {
		return fmt.Errorf("clear offline data: %w", err)
	}
	return nil
}
