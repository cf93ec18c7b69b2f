// Package app wires configuration, clients, the session store and the HTTP
// router into a runnable application.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"steam-inventory/internal/config"
	"steam-inventory/internal/inventory"
	"steam-inventory/internal/metrics"
	"steam-inventory/internal/middleware"
	"steam-inventory/internal/session"
	"steam-inventory/internal/steam"
	"steam-inventory/internal/ui"
)

const (
	steamHTTPTimeout  = 15 * time.Second
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 60 * time.Second
	compressionLevel  = 5
)

// Deps holds what main must provide. Nil fields get defaults: slog.Default,
// a fresh http.Client, and the global tracer provider.
type Deps struct {
	Cfg            *config.Config
	Logger         *slog.Logger
	HTTPClient     *http.Client
	TracerProvider trace.TracerProvider
	// SteamAPIBaseURL overrides the Steam Web API location.
	SteamAPIBaseURL string
}

// App is the fully wired application.
type App struct {
	Cfg     *config.Config
	Router  http.Handler
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// NewLogger builds the process logger: JSON in production, text otherwise.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var h slog.Handler
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("service", "steam-inventory", "env", cfg.Env)
}

// New wires every component from deps. ctx bounds background work such as
// the rate limiter's sweeper.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	client := deps.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: steamHTTPTimeout}
	}
	tp := deps.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	store, err := session.NewStore(cfg.SessionSecret, config.SessionTTL, cfg.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	m := metrics.New()

	authenticator := steam.NewAuthenticator(
		steam.NewOpenID(cfg.SteamAPIKey, cfg.CallbackURL(), client),
		steam.NewPlayerClient(cfg.SteamAPIKey, deps.SteamAPIBaseURL, client),
		logger,
	)
	inv := inventory.NewClient(cfg.Inventory, client,
		inventory.WithObserver(m),
		inventory.WithTracerProvider(tp),
	)

	handler := ui.NewHandler(authenticator, inv, store, m, logger, cfg.IsDevelopment())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Tracing(tp))
	if cfg.MetricsOn() {
		r.Use(m.Middleware)
	}
	// Recover must stay inside Tracing and the metrics middleware.
	r.Use(middleware.Recover(logger, http.HandlerFunc(ui.InternalError)))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RateLimiter(ctx, middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))
	r.Use(chimw.Compress(compressionLevel))

	r.NotFound(ui.NotFound)
	r.Get("/healthz", healthz)
	if cfg.MetricsOn() {
		r.Handle("/metrics", m.Handler())
	}
	ui.MountRoutes(r, handler)

	return &App{Cfg: cfg, Router: r, Metrics: m, Logger: logger}, nil
}

// Server returns an http.Server for the app bound to the configured port.
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:              a.Cfg.ListenAddr(),
		Handler:           a.Router,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		ErrorLog:          slog.NewLogLogger(a.Logger.Handler(), slog.LevelWarn),
	}
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
