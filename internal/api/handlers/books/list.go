package books

import (
	"net/http"

	"github.com/5w1tchy/isbn-books/internal/api/httpx"
)

// List handles GET /books.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.FindAll(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, booksResponse{Books: all})
}
