package ui

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"steam-inventory/internal/domain"
	"steam-inventory/internal/middleware"

	gomponents "maragu.dev/gomponents"
)

// IdentityProvider runs the Steam OpenID exchange.
type IdentityProvider interface {
	// AuthURL returns the provider URL the browser is sent to.
	AuthURL(ctx context.Context) (string, error)
	// Authenticate verifies the callback parameters and returns the
	// authenticated principal.
	Authenticate(ctx context.Context, params url.Values) (domain.Principal, error)
}

// InventorySource fetches the public inventory of a Steam account.
type InventorySource interface {
	Fetch(ctx context.Context, steamID string) (domain.Inventory, error)
}

// SessionStore persists the principal between requests.
type SessionStore interface {
	Save(w http.ResponseWriter, p domain.Principal) error
	Load(r *http.Request) (domain.Principal, error)
	Destroy(w http.ResponseWriter, r *http.Request) error
}

// LoginObserver is told about every completed callback.
type LoginObserver interface {
	ObserveLogin(ok bool)
}

type Handler struct {
	Identity    IdentityProvider
	Inventory   InventorySource
	Sessions    SessionStore
	Logins      LoginObserver
	Logger      *slog.Logger
	Development bool
}

func NewHandler(
	identity IdentityProvider,
	inventory InventorySource,
	sessions SessionStore,
	logins LoginObserver,
	logger *slog.Logger,
	development bool,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		Identity:    identity,
		Inventory:   inventory,
		Sessions:    sessions,
		Logins:      logins,
		Logger:      logger.With("component", "ui"),
		Development: development,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	return middleware.LoggerFromContext(r.Context(), h.Logger)
}

func (h *Handler) observeLogin(ok bool) {
	if h.Logins != nil {
		h.Logins.ObserveLogin(ok)
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = node.Render(w)
}

// InternalError renders the generic 500 page. It is used as the panic
// fallback and never includes error detail.
func InternalError(w http.ResponseWriter, _ *http.Request) {
	renderHTML(w, http.StatusInternalServerError, errorPage("Something went wrong",
		"An unexpected error occurred. Please try again later."))
}

// NotFound renders the 404 page.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	renderHTML(w, http.StatusNotFound, errorPage("Page not found",
		"The page you are looking for does not exist."))
}
