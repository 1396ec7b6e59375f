package utils

import "net/http"

type Middleware func(http.Handler) http.Handler

// ApplyMiddleware wraps handler in order, so the last middleware listed is
// the first to see a request.
func ApplyMiddleware(handler http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		if m == nil {
			continue
		}
		handler = m(handler)
	}
	return handler
}
