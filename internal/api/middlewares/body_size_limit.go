package middlewares

import (
	"net/http"
)

// BodySizeLimit caps POST, PUT and PATCH bodies at limit bytes. Reading
// past it yields *http.MaxBytesError, which the handlers render as 413.
func BodySizeLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
