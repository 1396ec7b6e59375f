package books

import (
	"bytes"
	"net/http"

	"github.com/5w1tchy/isbn-books/internal/api/httpx"
	"github.com/5w1tchy/isbn-books/internal/models"
	"github.com/5w1tchy/isbn-books/internal/validate"
)

// Create handles POST /books with a {"book": {...}} body. The body is the
// only one checked against a schema; a duplicate ISBN is left to surface
// as a store failure.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	raw, err := httpx.ReadBody(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var body any = map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if body, err = httpx.DecodeGeneric(raw); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	if err := validate.Check(validate.CreateBook, body); err != nil {
		h.fail(w, r, err)
		return
	}

	in := models.BookFromFields(body.(map[string]any)["book"].(map[string]any))
	b, err := h.store.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, bookResponse{Book: b})
}
