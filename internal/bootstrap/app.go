package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/cosmic"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/config"
	"github.com/mariemajor/looking-beyond-cosmos/internal/infra/scheduler"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	snapshotJobTimeout     = time.Minute
	cosmicSnapshotJob      = "cosmic-snapshot"
)

// App encapsulates the HTTP server and background job lifecycle.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	server    *http.Server
	jobs      *scheduler.Scheduler
	cosmicSvc cosmic.Service
	now       func() time.Time
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, jobs *scheduler.Scheduler, cosmicSvc cosmic.Service) (*App, error) {
	app := &App{
		cfg:       cfg,
		logger:    logger.With("component", "bootstrap"),
		server:    server,
		jobs:      jobs,
		cosmicSvc: cosmicSvc,
		now:       time.Now,
	}
	if cfg.Scheduler.Enabled {
		err := jobs.Register(scheduler.Job{
			Name:    cosmicSnapshotJob,
			Spec:    cfg.Scheduler.CosmicSnapshotSpec,
			Timeout: snapshotJobTimeout,
			Run:     app.refreshCosmic,
		})
		if err != nil {
			return nil, err
		}
	}
	return app, nil
}

// Run starts the HTTP server and the scheduler, then blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()
	if a.cfg.Scheduler.Enabled {
		a.jobs.Start()
	}

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
		return a.shutdown()
	case err := <-errCh:
		_ = a.stopJobs()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) shutdown() error {
	timeout := a.cfg.HTTP.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	serverErr := a.server.Shutdown(shutdownCtx)
	jobsErr := a.stopJobs()
	return errors.Join(serverErr, jobsErr)
}

func (a *App) stopJobs() error {
	if !a.cfg.Scheduler.Enabled {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), snapshotJobTimeout)
	defer cancel()
	if err := a.jobs.Stop(ctx); err != nil {
		a.logger.Warn("scheduler did not stop cleanly", "error", err)
		return err
	}
	return nil
}

// refreshCosmic persists the reading for the current day in the scheduler's timezone.
func (a *App) refreshCosmic(ctx context.Context) error {
	now := a.now()
	if loc, err := time.LoadLocation(a.cfg.Scheduler.Timezone); err == nil {
		now = now.In(loc)
	}
	y, m, d := now.Date()
	_, err := a.cosmicSvc.Refresh(ctx, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return err
}
