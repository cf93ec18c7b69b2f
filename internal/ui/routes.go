package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"steam-inventory/internal/ui/assets"
)

// MountRoutes registers the pages, the login flow and the static assets.
func MountRoutes(r chi.Router, h *Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", staticFiles(http.FileServer(http.FS(staticFS)))))
	}

	r.Group(func(r chi.Router) {
		r.Use(h.LoadSession)
		r.Get("/", h.Landing)
		r.Get("/auth/steam", h.Login)
		r.Get("/auth/steam/return", h.Callback)
		r.Get("/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth)
			r.Get("/profile/{steamid}", h.Profile)
		})
	})
}

func staticFiles(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
