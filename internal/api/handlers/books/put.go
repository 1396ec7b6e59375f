package books

import (
	"bytes"
	"net/http"

	"github.com/5w1tchy/isbn-books/internal/api/httpx"
	"github.com/5w1tchy/isbn-books/internal/api/middlewares"
	"github.com/5w1tchy/isbn-books/internal/models"
	"github.com/5w1tchy/isbn-books/internal/validate"
)

// Put handles PUT /books/{isbn}. The fields sit at the top level of the
// body and only their types are checked; an isbn among them is ignored. A body
// with every field replaces the row, a partial one updates what it names.
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
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

	var b models.Book
	if p.Complete() {
		b, err = h.store.Update(r.Context(), isbn, p.Apply(models.Book{}))
	} else {
		b, err = h.store.Patch(r.Context(), isbn, p)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bookResponse{Book: b})
}

// readPatch decodes a PUT or PATCH body. Values are type-checked so a bad
// one is reported by field name; nothing is required.
func (h *Handler) readPatch(r *http.Request) (models.BookPatch, error) {
	raw, err := httpx.ReadBody(r)
	if err != nil {
		return models.BookPatch{}, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return models.BookPatch{}, nil
	}
	body, err := httpx.DecodeGeneric(raw)
	if err != nil {
		return models.BookPatch{}, err
	}
	if err := validate.Check(validate.BookPatch, body); err != nil {
		return models.BookPatch{}, err
	}

	p := models.PatchFromFields(body.(map[string]any))
	if p.Empty() && len(body.(map[string]any)) > 0 {
		// e.g. a create-style {"book": {...}} wrapper
		h.log.Debug("update body names no book fields",
			"isbn", r.PathValue("isbn"),
			"request_id", middlewares.GetRequestID(r),
		)
	}
	return p, nil
}
