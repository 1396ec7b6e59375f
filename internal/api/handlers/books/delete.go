package books

import (
	"net/http"

	"github.com/5w1tchy/isbn-books/internal/api/httpx"
)

// Delete handles DELETE /books/{isbn}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	isbn := r.PathValue("isbn")
	if _, err := h.store.FindOne(r.Context(), isbn); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.store.Remove(r.Context(), isbn); err != nil {
		h.fail(w, r, err)
		return
	}
	h.log.Info("book deleted", "isbn", isbn)
	httpx.WriteJSON(w, http.StatusOK, messageResponse{Message: "Book deleted"})
}
