package router

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/5w1tchy/isbn-books/internal/api/apperr"
	"github.com/5w1tchy/isbn-books/internal/api/handlers/books"
)

// Pinger is satisfied by *sql.DB and *sqlx.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Middleware matches the signature used throughout internal/api/middlewares.
type Middleware = func(http.Handler) http.Handler

// Router mounts the books API plus health probes. writeGuard, when non-nil,
// wraps the mutating /books routes only.
func Router(h *books.Handler, db Pinger, writeGuard Middleware) http.Handler {
	if writeGuard == nil {
		writeGuard = func(next http.Handler) http.Handler { return next }
	}
	write := func(fn http.HandlerFunc) http.Handler { return writeGuard(fn) }

	mux := http.NewServeMux()

	mux.HandleFunc("GET /books", h.List)
	mux.Handle("POST /books", write(h.Create))
	mux.HandleFunc("GET /books/{isbn}", h.Get)
	mux.HandleFunc("HEAD /books/{isbn}", h.Head)
	mux.Handle("PUT /books/{isbn}", write(h.Put))
	mux.Handle("PATCH /books/{isbn}", write(h.Patch))
	mux.Handle("DELETE /books/{isbn}", write(h.Delete))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := db.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, "not ready")
			return
		}
		_, _ = io.WriteString(w, "ready")
	})

	// everything else, any method
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		apperr.Write(w, http.StatusNotFound, "Not Found")
	})

	return mux
}
