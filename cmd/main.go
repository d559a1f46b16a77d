package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DaalbuCZ/Hermes/internal/adapters/http/api"
	"github.com/DaalbuCZ/Hermes/internal/adapters/http/swagger"
	"github.com/DaalbuCZ/Hermes/internal/adapters/repository"
	app "github.com/DaalbuCZ/Hermes/internal/app"
	"github.com/DaalbuCZ/Hermes/internal/config"
	"github.com/DaalbuCZ/Hermes/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout            = 10 * time.Second
	writeTimeout           = 35 * time.Second
	idleTimeout            = 60 * time.Second
	readHeaderTimeout      = 5 * time.Second
	shutdownTimeout        = 30 * time.Second
	serviceMetricsInterval = 5 * time.Second
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(logger.WithFormat(logger.Format(cfg.LogFormat))); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "hermes stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	log.Info(ctx, "storage ready", logger.String("driver", cfg.StorageDriver))

	svc := app.New(
		app.WithLogger(log.Named("service")),
		app.WithStore(store),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithQueueSize(cfg.QueueSize),
		app.WithDedupeSize(cfg.DedupeSize),
	)
	if err := svc.Start(ctx); err != nil {
		_ = store.Close()
		return fmt.Errorf("failed to start service: %w", err)
	}

	go startServiceMetricsUpdater(ctx, svc)

	handler, err := newHandler(cfg, svc)
	if err != nil {
		return errors.Join(err, svc.Stop(context.Background()))
	}
	if !cfg.AuthEnabled {
		log.Warn(ctx, "authentication disabled; every route is public")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for shutdown signal or a listener failure.
	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErr:
	}
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	if err := svc.Stop(shutdownCtx); err != nil {
		log.Error(ctx, "service shutdown failed", logger.Error(err))
		runErr = errors.Join(runErr, err)
	}

	log.Info(ctx, "server stopped")
	return runErr
}

// openStore opens the configured result store. An empty DSN selects the
// driver's local default.
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory, "":
		return repository.NewMemoryStore(ctx), nil
	case config.StorageSQLite:
		return repository.OpenSQL(ctx, repository.DriverSQLite, cfg.StorageDSN)
	case config.StoragePostgres:
		return repository.OpenSQL(ctx, repository.DriverPostgres, cfg.StorageDSN)
	default:
		return nil, fmt.Errorf("%w: %q", repository.ErrUnsupportedDriver, cfg.StorageDriver)
	}
}

// newHandler builds the HTTP handler with docs, CORS and optional auth.
func newHandler(cfg *config.Config, svc api.Dependencies) (http.Handler, error) {
	opts := []api.Option{
		api.WithCORSOrigins(cfg.CORSOrigins),
		api.WithDocs(swagger.Register),
	}
	if cfg.AuthEnabled {
		if cfg.JWTSecret == "" {
			return nil, fmt.Errorf("%w: jwt_secret is required when auth is enabled", config.ErrInvalidConfig)
		}
		opts = append(opts, api.WithAuth(api.NewAuthenticator(cfg.JWTSecret, cfg.Users, cfg.TokenTTL())))
	}
	return api.NewServer(svc, opts...).Handler(), nil
}

// startServiceMetricsUpdater refreshes queue and storage gauges until ctx ends.
func startServiceMetricsUpdater(ctx context.Context, svc *app.Service) {
	ticker := time.NewTicker(serviceMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// GetStats publishes the gauges as a side effect.
			_ = svc.GetStats()
		}
	}
}
