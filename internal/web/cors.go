package web

import "net/http"

const (
	corsMethods = "GET,POST,OPTIONS"
	corsHeaders = "Content-Type,X-Request-Id"
	corsExpose  = "Content-Length,X-Request-Id"
)

// WithDevCORS lets a local dashboard on another origin read stats and
// frames and post pause/resume. Only used when ServerConfig.DevMode is set.
func WithDevCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Methods", corsMethods)
			h.Set("Access-Control-Allow-Headers", corsHeaders)
			h.Set("Access-Control-Expose-Headers", corsExpose)
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
