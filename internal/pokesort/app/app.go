package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/pokesort/internal/pokesort/http"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/metrics"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/service"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store/drivers/postgres"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store/drivers/sqlite"
	"github.com/aussiebroadwan/pokesort/pkg/cryptox"
	"github.com/aussiebroadwan/pokesort/pkg/httpx"
	"github.com/aussiebroadwan/pokesort/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	redisKeyPrefix = "pokesort:ratelimit:"
)

// Application encapsulates the pokesort service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	redis   *redis.Client
	window  httpx.WindowCounter
	metrics *metrics.Metrics

	// Services
	accountService      *service.AccountService
	sessionService      *service.SessionService
	pokemonService      *service.PokemonService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "pokesort",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: metrics.New(),
	}
	app.housekeepingService = service.NewHousekeepingService(app.logger, cfg.HousekeepingInterval)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initRateLimit(); err != nil {
		app.closeAll()
		return nil, err
	}
	if err := app.initServices(); err != nil {
		app.closeAll()
		return nil, err
	}
	if err := app.initHTTP(); err != nil {
		app.closeAll()
		return nil, err
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("pokesort starting", "port", app.cfg.Port, "version", BuildVersion,
		"database", app.cfg.Database.Driver, "rate_limit_backend", app.cfg.RateLimit.Backend)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			app.closeAll()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains the HTTP server, stops the housekeeping worker and then
// releases the store and Redis.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down pokesort...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Must stop before the store closes.
	app.housekeepingService.Stop()

	if err := app.closeAll(); err != nil {
		return err
	}

	app.logger.Info("pokesort stopped")
	return nil
}

func (app *Application) closeAll() error {
	var errs []error
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
			errs = append(errs, err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database", "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// initDatabase opens the configured store and applies migrations.
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.Database.Driver {
	case DriverPostgres:
		db, err = postgres.NewStore(app.cfg.Database.URL)
	default:
		db, err = sqlite.NewStore(sqlite.FileDSN(app.cfg.Database.File))
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		app.db = nil
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.Database.Driver)
	return nil
}

// initRateLimit picks the fixed-window backend. The in-memory one is swept by
// housekeeping; Redis expires its own keys.
func (app *Application) initRateLimit() error {
	if app.cfg.RateLimit.Backend != BackendRedis {
		mem := httpx.NewMemoryWindow()
		app.housekeepingService.Register("rate-limit-windows", mem)
		app.window = mem
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     app.cfg.Redis.Addr,
		Password: app.cfg.Redis.Password,
		DB:       app.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to redis at %s: %w", app.cfg.Redis.Addr, err)
	}

	app.redis = client
	app.window = httpx.NewRedisWindow(client, redisKeyPrefix)
	app.logger.Info("rate limit counters shared via redis", "addr", app.cfg.Redis.Addr)
	return nil
}

// sessionSecret returns the configured secret, or in dev a random one that
// lives as long as the process.
func (app *Application) sessionSecret() ([]byte, error) {
	if app.cfg.Auth.SessionSecret != "" {
		return []byte(app.cfg.Auth.SessionSecret), nil
	}
	if app.cfg.IsProd() {
		return nil, errors.New("AUTH_SESSION_SECRET is required in prod")
	}

	secret, err := cryptox.GenerateToken(32)
	if err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}
	app.logger.Warn("AUTH_SESSION_SECRET not set, using an ephemeral secret; sessions end on restart")
	return []byte(secret), nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() error {
	pepper, err := cryptox.LoadPepper(app.cfg.Auth.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	secret, err := app.sessionSecret()
	if err != nil {
		return err
	}

	app.sessionService, err = service.NewSessionService(service.SessionConfig{
		Secret:       secret,
		Issuer:       app.cfg.Auth.Issuer,
		TTL:          app.cfg.Auth.SessionTTL,
		RefreshAfter: app.cfg.Auth.RefreshAfter,
	}, app.metrics)
	if err != nil {
		return fmt.Errorf("failed to initialize sessions: %w", err)
	}

	validator := service.NewValidator()
	app.accountService = service.NewAccountService(app.db, cryptox.NewArgon2Hasher(pepper), validator, app.metrics)
	app.pokemonService = service.NewPokemonService(app.db, validator)
	return nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() error {
	proxies, err := app.cfg.RateLimit.Proxies()
	if err != nil {
		return fmt.Errorf("failed to parse trusted proxies: %w", err)
	}

	router := httpapi.NewRouter(httpapi.Options{
		BuildVersion: BuildVersion,
		Cookie: httpx.SessionCookie{
			MaxAge:      app.sessionService.TTL(),
			ForceSecure: app.cfg.SecureCookies(),
		},
		Gate: httpx.GateConfig{
			Prefixes:   app.cfg.Auth.ProtectedPrefixes,
			SignInPath: app.cfg.Auth.SignInPath,
		},
		ForceSecure: app.cfg.SecureCookies(),
		Window: httpx.WindowConfig{
			Max:    app.cfg.RateLimit.Max,
			Window: app.cfg.RateLimit.Window(),
		},
		WindowCounter:  app.window,
		TrustedProxies: proxies,
	}, app.db, app.metrics, app.logger)

	if app.redis != nil {
		client := app.redis
		router.AddReadinessCheck("ratelimit", func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
	}

	router.AccountService = app.accountService
	router.SessionService = app.sessionService
	router.PokemonService = app.pokemonService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}
