package books

import (
	"net/http"

	"github.com/5w1tchy/isbn-books/internal/api/httpx"
)

// Patch handles PATCH /books/{isbn}: only the named fields change.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	if _, err := h.store.FindOne(r.Context(), isbn); err != nil {
		h.fail(w, r, err)
		return
	}

	p, err := h.readPatch(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	b, err := h.store.Patch(r.Context(), isbn, p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bookResponse{Book: b})
}
