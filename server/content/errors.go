// Package content implements the engagement and ranking core behind the
// presentation layer: view dedup, rating toggles, the follow graph,
// popularity ranking, similar-article lookup and age labels.
package content

import (
	"github.com/jackc/pgconn"
	"github.com/pkg/errors"
)

// Failure taxonomy surfaced to callers. Handlers translate these to HTTP
// status codes; everything else is an internal error. Unique-constraint
// races are retried internally and never reach the caller.
var (
	ErrNotFound        = errors.New("referenced entity does not exist")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("authentication required")
)

const pgUniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation, the signal for a lost get-or-create race.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode
	}
	return false
}
