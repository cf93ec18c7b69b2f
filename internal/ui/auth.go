package ui

import (
	"errors"
	"net/http"

	"steam-inventory/internal/domain"
)

// LoadSession attaches the session principal to the request context. A
// cookie that fails verification is cleared and the request continues
// anonymously.
func (h *Handler) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := h.Sessions.Load(r)
		switch {
		case err == nil:
			r = r.WithContext(domain.WithPrincipal(r.Context(), p))
		case errors.Is(err, domain.ErrNoSession):
		default:
			h.log(r).Info("discarding invalid session", "error", err)
			if derr := h.Sessions.Destroy(w, r); derr != nil {
				h.log(r).Warn("clear session cookie", "error", derr)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth redirects anonymous requests to the landing page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := domain.PrincipalFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Login sends the browser to the Steam sign-in page.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	target, err := h.Identity.AuthURL(r.Context())
	if err != nil {
		h.log(r).Warn("build steam auth url", "error", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// Callback completes the OpenID exchange. Every failure sends the browser
// back to the landing page without detail.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	p, err := h.Identity.Authenticate(r.Context(), r.URL.Query())
	if err != nil {
		h.observeLogin(false)
		h.log(r).Warn("steam authentication failed", "error", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err := h.Sessions.Save(w, p); err != nil {
		h.observeLogin(false)
		h.log(r).Error("save session", "steam_id", p.SteamID, "error", err)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.observeLogin(true)
	h.log(r).Info("signed in", "steam_id", p.SteamID)
	http.Redirect(w, r, p.ProfilePath(), http.StatusFound)
}

// Logout ends the session and always lands on the landing page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Destroy(w, r); err != nil {
		h.log(r).Warn("logout", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
