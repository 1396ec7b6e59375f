package middlewares

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/5w1tchy/isbn-books/internal/api/apperr"
)

// Recovery turns a panic into the generic 500 envelope and logs the stack.
func Recovery(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					rid := GetRequestID(r)
					if rid == "" {
						rid = "unknown"
					}
					log.Error("[PANIC] recovered",
						"request_id", rid,
						"method", r.Method,
						"path", r.URL.Path,
						"panic", err,
						"stack", string(debug.Stack()),
					)
					apperr.Write(w, http.StatusInternalServerError, apperr.GenericMessage)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
