package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Black-png/trackers-api/docs" //nolint:revive,nolintlint
)

// NewRouter mounts the API. metrics may be nil.
func NewRouter(h *Handler, mw *Middleware, metrics http.Handler) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/ready", h.Ready)
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		r.Get("/packages", h.Packages)
		r.Get("/notification-templates", h.NotificationTemplates)
		r.Get("/notification-templates/preview", h.PreviewTemplate)
	})

	if metrics != nil {
		router.Method(http.MethodGet, "/metrics", metrics)
	}

	return router
}
