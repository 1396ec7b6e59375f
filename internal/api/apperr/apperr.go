package apperr

import (
	"errors"
	"net/http"

	"github.com/5w1tchy/isbn-books/internal/api/httpx"
	"github.com/5w1tchy/isbn-books/internal/store/books"
	"github.com/5w1tchy/isbn-books/internal/validate"
)

// GenericMessage is all a client learns about a 500.
const GenericMessage = "Internal Server Error"

type errorDetail struct {
	Message any `json:"message"`
	Status  int `json:"status"`
}

// Body is the error envelope. Message is repeated at the top level;
// it is a string, or a list of strings for validation failures.
type Body struct {
	Error   errorDetail `json:"error"`
	Message any         `json:"message"`
}

func NewBody(status int, message any) Body {
	return Body{Error: errorDetail{Message: message, Status: status}, Message: message}
}

// FromError maps an error to the status and message sent to the client.
func FromError(err error) (int, any) {
	var nf *books.NotFoundError
	var ve *validate.ValidationError
	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &nf):
		return http.StatusNotFound, nf.Error()
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Messages
	case errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge, "request body too large"
	case errors.Is(err, httpx.ErrInvalidJSON):
		return http.StatusBadRequest, httpx.ErrInvalidJSON.Error()
	default:
		return http.StatusInternalServerError, GenericMessage
	}
}

// Write renders the envelope with the given status.
func Write(w http.ResponseWriter, status int, message any) {
	httpx.WriteJSON(w, status, NewBody(status, message))
}

// WriteError maps err and writes it. It returns the status used.
func WriteError(w http.ResponseWriter, err error) int {
	status, msg := FromError(err)
	Write(w, status, msg)
	return status
}
