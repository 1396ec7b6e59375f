package books

import (
	"net/http"

	"github.com/5w1tchy/isbn-books/internal/api/httpx"
)

// Get handles GET /books/{isbn}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.store.FindOne(r.Context(), r.PathValue("isbn"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bookResponse{Book: b})
}
