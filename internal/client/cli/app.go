package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/seungyeonleeee/triply/internal/client/client"
	"github.com/seungyeonleeee/triply/internal/client/config"
	"github.com/seungyeonleeee/triply/internal/client/render"
	"github.com/seungyeonleeee/triply/internal/client/repositories/trips"
	"github.com/seungyeonleeee/triply/internal/client/services"
	"github.com/seungyeonleeee/triply/internal/client/store"
	"github.com/seungyeonleeee/triply/internal/logging"
)

// ErrNotLoggedIn is returned by commands that need a session.
var ErrNotLoggedIn = errors.New("please login first")

// ErrNoTripOpen is returned by commands that work on the open trip.
var ErrNoTripOpen = errors.New("no trip open, use open <n>")

type App struct {
	config      *config.Config
	authService services.AuthService
	tripService services.TripService
	store       *store.Store
	render      *render.Renderer
	logger      logging.Logger
	db          *sql.DB
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewTripPlannerClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:      c,
		authService: services.NewAuthService(apiClient, db),
		tripService: services.NewTripService(apiClient, trips.NewSQLiteRepository(db), c.ExportDir, logger),
		store:       store.New(),
		render:      render.New(os.Stdout),
		logger:      logger,
		db:          db,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run blocks until the user quits or stdin ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() {
		if err := a.authService.Close(ctx); err != nil {
			a.logger.Warn(ctx, "close client", "error", err)
		}
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	a.store.Subscribe(func(st store.State) {
		a.logger.Debug(ctx, "state changed", "user", st.Username, "online", st.Online, "trips", len(st.Trips))
	})

	fmt.Fprintln(a.out, "Welcome to Triply (type 'help' for commands)")
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.status, a.reader, a.out, func(err error) {
		fmt.Fprintln(a.out, "error:", err)
		a.logger.Debug(ctx, "command failed", "error", err)
	})
}

func (a *App) isLoggedIn() bool {
	return a.store.Snapshot().LoggedIn()
}

func (a *App) status() string {
	st := a.store.Snapshot()
	s := a.render.Status(st.Online)
	if st.Username != "" {
		s = st.Username + " " + s
	}
	if st.Current != nil {
		s += " [" + render.TripName(*st.Current) + "]"
	}
	return s
}

func (a *App) setOnline(ctx context.Context, online bool) {
	if a.store.Online() != online {
		a.logger.Info(ctx, "connectivity changed", "online", online)
	}
	a.store.SetOnline(online)
}

// StartOnlineStatusWatcher pings the server every interval until ctx ends.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, interval)
			err := a.authService.Ping(pctx)
			cancel()
			a.setOnline(ctx, err == nil)

		case <-ctx.Done():
			return
		}
	}
}
