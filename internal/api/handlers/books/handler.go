package books

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/5w1tchy/isbn-books/internal/api/apperr"
	"github.com/5w1tchy/isbn-books/internal/api/middlewares"
	"github.com/5w1tchy/isbn-books/internal/models"
)

// Store is what the handlers need from the record store.
type Store interface {
	Create(ctx context.Context, b models.Book) (models.Book, error)
	FindAll(ctx context.Context) ([]models.Book, error)
	FindOne(ctx context.Context, isbn string) (models.Book, error)
	Update(ctx context.Context, isbn string, b models.Book) (models.Book, error)
	Patch(ctx context.Context, isbn string, p models.BookPatch) (models.Book, error)
	Remove(ctx context.Context, isbn string) error
	Exists(ctx context.Context, isbn string) (bool, error)
}

// Handler serves /books. Each method is a plain http.HandlerFunc.
type Handler struct {
	store Store
	log   *slog.Logger
}

func New(store Store, log *slog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// fail writes err as the error envelope. Anything mapped to 5xx is logged
// here because the client only sees the generic message.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.WriteError(w, err)
	if status >= http.StatusInternalServerError {
		h.log.Error("books request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middlewares.GetRequestID(r),
			"err", err,
		)
	}
}
