package middlewares

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/5w1tchy/isbn-books/internal/api/apperr"
)

// Cors admits browser requests from origins; "*" admits any origin.
// Requests without an Origin header pass untouched.
func Cors(origins []string, log *slog.Logger) func(http.Handler) http.Handler {
	wildcard := slices.Contains(origins, "*")
	allowed := func(o string) bool { return wildcard || slices.Contains(origins, o) }

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !allowed(origin) {
				log.Warn("[CORS] blocked origin", "origin", origin, "method", r.Method, "path", r.URL.Path)
				apperr.Write(w, http.StatusForbidden, "Origin not allowed")
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			h.Set("Access-Control-Allow-Methods", "GET, HEAD, POST, PUT, PATCH, DELETE, OPTIONS")
			h.Set("Access-Control-Max-Age", "3600")
			h.Set("Access-Control-Expose-Headers",
				"X-Request-ID, X-RateLimit-Policy, X-RateLimit-Limit, X-RateLimit-Remaining, Retry-After, X-Response-Time")

			if r.Method == http.MethodOptions {
				h.Add("Vary", "Access-Control-Request-Method")
				h.Add("Vary", "Access-Control-Request-Headers")
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
