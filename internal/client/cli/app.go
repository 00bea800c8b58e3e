package cli

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/loginkeeper/internal/client/client"
	"github.com/dmitrijs2005/loginkeeper/internal/client/config"
	"github.com/dmitrijs2005/loginkeeper/internal/client/metrics"
	"github.com/dmitrijs2005/loginkeeper/internal/client/session"
	"github.com/dmitrijs2005/loginkeeper/internal/client/storage"
	"github.com/dmitrijs2005/loginkeeper/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	client   client.Client
	holder   *session.Holder
	registry *prometheus.Registry
	store    io.Closer
	log      logging.Logger

	out io.Writer

	modeMu sync.Mutex
	mode   Mode
}

// NewApp opens the configured store, builds the backend client and loads
// the persisted login user.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogLevel, c.LogFormat, os.Stderr)

	repo, closer, err := storage.Open(ctx, c)
	if err != nil {
		log.Error(ctx, "error opening session store", "store", c.StoreKind, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServerURL, client.WithTimeout(c.RequestTimeout))
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	holder, err := session.New(ctx, repo, apiClient,
		session.WithLogger(log.With("component", "session")),
		session.WithMetrics(metrics.New(reg)),
	)
	if err != nil {
		_ = closer.Close()
		_ = apiClient.Close()
		return nil, err
	}

	return &App{
		config:   c,
		client:   apiClient,
		holder:   holder,
		registry: reg,
		store:    closer,
		log:      log,
		out:      os.Stdout,
	}, nil
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), "switched mode", "mode", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	_ = a.client.Close()
	_ = a.store.Close()
}

// checkOnline pings the backend once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.client.Ping(ctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
}

// StartOnlineStatusWatcher pings the backend every interval until ctx is
// done. A non-positive interval disables the watcher.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		a.log.Warn(ctx, "online status watcher disabled", "interval", interval)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// watchUser reports every change of the login user until ctx is done.
func (a *App) watchUser(ctx context.Context) {
	ch, cancel := a.holder.Subscribe()
	defer cancel()

	for {
		select {
		case u, ok := <-ch:
			if !ok {
				return
			}
			a.log.Info(ctx, "login user changed", "user", u.UserName)
		case <-ctx.Done():
			return
		}
	}
}
