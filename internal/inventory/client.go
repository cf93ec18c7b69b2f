// Package inventory fetches public Steam inventories and derives the display
// attributes of their items.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"steam-inventory/internal/config"
	"steam-inventory/internal/domain"
)

const (
	serviceName = "steam-inventory"
	tracerName  = "steam-inventory/internal/inventory"

	// Fetch outcomes reported to the FetchObserver.
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"

	maxErrorBody = 512
)

// FetchObserver records the outcome and duration of each fetch.
type FetchObserver interface {
	ObserveInventoryFetch(outcome string, d time.Duration)
}

// Client reads the public inventory endpoint. It never retries.
type Client struct {
	cfg      config.InventoryConfig
	client   *http.Client
	observer FetchObserver
	tracer   trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithObserver attaches a FetchObserver.
func WithObserver(o FetchObserver) Option {
	return func(c *Client) { c.observer = o }
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) { c.tracer = tp.Tracer(tracerName) }
}

// NewClient creates a Client. A nil client uses http.DefaultClient.
func NewClient(cfg config.InventoryConfig, client *http.Client, opts ...Option) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	c := &Client{
		cfg:    cfg,
		client: client,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint queried for steamID.
func (c *Client) URL(steamID string) string {
	return fmt.Sprintf("%s/%s/%d/%d?l=english&count=%d",
		c.cfg.BaseURL, steamID, c.cfg.AppID, c.cfg.ContextID, c.cfg.Count)
}

// Fetch retrieves the inventory of steamID. The call is bounded by the
// configured timeout and by ctx. A response with success != 1 is an error.
func (c *Client) Fetch(ctx context.Context, steamID string) (domain.Inventory, error) {
	if !domain.ValidSteamID(steamID) {
		return domain.Inventory{}, domain.ErrValidation("invalid steam id %q", steamID)
	}

	ctx, span := c.tracer.Start(ctx, "inventory.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("steam.id", steamID),
			attribute.Int("inventory.app_id", c.cfg.AppID),
			attribute.Int("inventory.context_id", c.cfg.ContextID),
		),
	)
	defer span.End()

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	inv, err := c.fetch(ctx, steamID)
	outcome := OutcomeOK
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		outcome = OutcomeTimeout
	case err != nil:
		outcome = OutcomeError
	}
	if c.observer != nil {
		c.observer.ObserveInventoryFetch(outcome, time.Since(start))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		return domain.Inventory{}, err
	}
	span.SetAttributes(attribute.Int("inventory.items", len(inv.Items)))
	return inv, nil
}

func (c *Client) fetch(ctx context.Context, steamID string) (domain.Inventory, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(steamID), nil)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("build inventory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("inventory request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return domain.Inventory{}, domain.ErrUpstream(serviceName, resp.StatusCode,
			"inventory endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var inv domain.Inventory
	if err := json.NewDecoder(resp.Body).Decode(&inv); err != nil {
		return domain.Inventory{}, fmt.Errorf("decode inventory: %w", err)
	}
	if inv.Success != 1 {
		return domain.Inventory{}, domain.ErrUpstream(serviceName, resp.StatusCode,
			"inventory endpoint reported success=%d", inv.Success)
	}
	return inv, nil
}
