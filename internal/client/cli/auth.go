package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/seungyeonleeee/triply/internal/client/client"
	"github.com/seungyeonleeee/triply/internal/common"
)

// Test seams for the interactive prompts.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getChoice     = GetChoice
)

func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, username, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registered, you can login now")
	return nil
}

// Login tries the server first and falls back to the offline cache when the
// server is unreachable. An offline session can read cached trips only.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	masterKey, err := a.authService.OnlineLogin(ctx, username, password)
	online := err == nil
	if errors.Is(err, client.ErrUnavailable) {
		a.logger.Info(ctx, "server unavailable, trying offline login")
		masterKey, err = a.authService.OfflineLogin(ctx, username, password)
	}
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	defer common.WipeByteArray(masterKey)

	a.store.Reset()
	a.store.SetSession(username, masterKey)
	a.setOnline(ctx, online)

	if online {
		fmt.Fprintln(a.out, "Logged in")
	} else {
		fmt.Fprintln(a.out, "Logged in offline, changes are disabled until the server is back")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.store.Reset()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
