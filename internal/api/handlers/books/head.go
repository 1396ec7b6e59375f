package books

import (
	"net/http"
)

// Head handles HEAD /books/{isbn}: 200 if the book exists, 404 if not, never a body.
func (h *Handler) Head(w http.ResponseWriter, r *http.Request) {
	ok, err := h.store.Exists(r.Context(), r.PathValue("isbn"))
	if err != nil {
		h.log.Error("books head failed", "isbn", r.PathValue("isbn"), "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}
