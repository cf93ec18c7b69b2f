package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"steam-inventory/internal/domain"
)

// Landing renders the sign-in page, linking to the caller's profile when a
// session is present.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	p, ok := domain.PrincipalFromContext(r.Context())
	var current *domain.Principal
	if ok {
		current = &p
	}
	renderHTML(w, http.StatusOK, landingPage(current))
}

// Profile renders the principal's profile card and inventory. Requests for
// another account are redirected to the caller's own profile. An inventory
// that cannot be fetched renders as empty.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	p, ok := domain.PrincipalFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if chi.URLParam(r, "steamid") != p.SteamID {
		http.Redirect(w, r, p.ProfilePath(), http.StatusFound)
		return
	}

	inv, err := h.Inventory.Fetch(r.Context(), p.SteamID)
	if err != nil {
		h.log(r).Warn("inventory unavailable", "steam_id", p.SteamID, "error", err)
		inv = domain.Inventory{}
	}

	renderHTML(w, http.StatusOK, profilePage(newProfileView(p, inv, h.Development)))
}
