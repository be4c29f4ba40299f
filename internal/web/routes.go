package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rook-computer/pixelplay/internal/input"
)

// NewRouter builds the debug API:
// - GET  /api/v1/stats      frame loop state as JSON
// - GET  /api/v1/frame.png  current buffer as PNG
// - POST /api/v1/pause, /resume, /overlay, /quit
// - GET  /metrics           Prometheus exposition
func NewRouter(deps APIV1Deps) http.Handler {
	deps = deps.withDefaults()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", deps.Metrics)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/stats", handleStats(deps))
		r.Get("/frame.png", handleFramePNG(deps))
		r.Post("/pause", handleEvent(deps, input.Pause))
		r.Post("/resume", handleEvent(deps, input.Resume))
		r.Post("/overlay", handleEvent(deps, input.ToggleOverlay))
		r.Post("/quit", handleEvent(deps, input.Quit))
	})
	return r
}
