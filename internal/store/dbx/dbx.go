package dbx

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUniqueViolation marks an insert that collided with an existing key.
var ErrUniqueViolation = errors.New("unique violation")

// ErrDriver is the kind of every failure Classify does not recognise.
var ErrDriver = errors.New("driver error")

const pgUniqueViolation = "23505"

// Classify maps a driver error to one of the kinds above. nil stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var pg *pgconn.PgError
	if errors.As(err, &pg) {
		if pg.Code == pgUniqueViolation {
			return ErrUniqueViolation
		}
		return ErrDriver
	}
	// modernc sqlite reports constraint failures only through the message
	if IsUniqueViolation(err) {
		return ErrUniqueViolation
	}
	return ErrDriver
}

// IsUniqueViolation does a best-effort match on the error text.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
