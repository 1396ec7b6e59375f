package httpx

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// ErrInvalidJSON is returned for bodies that are not well-formed JSON.
var ErrInvalidJSON = errors.New("invalid JSON body")

var (
	encoder = jsoniter.ConfigCompatibleWithStandardLibrary
	// numbers stay json.Number so the validator can tell 264 from 264.5
	decoder = jsoniter.Config{UseNumber: true, EscapeHTML: true}.Froze()
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = encoder.NewEncoder(w).Encode(v)
}

// ReadBody reads the whole request body. Oversized bodies (see the body
// size middleware) surface as the *http.MaxBytesError.
func ReadBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

// DecodeGeneric parses raw into maps, slices and json.Number values.
func DecodeGeneric(raw []byte) (any, error) {
	var v any
	if err := decoder.Unmarshal(raw, &v); err != nil {
		return nil, ErrInvalidJSON
	}
	return v, nil
}

// Decode parses raw into dst. Unknown fields are ignored.
func Decode(raw []byte, dst any) error {
	if err := decoder.Unmarshal(raw, dst); err != nil {
		return ErrInvalidJSON
	}
	return nil
}
