package db

import "errors"

// ErrNoRows signals that a lookup matched nothing.
var ErrNoRows = errors.New("db: no rows")

// Op constants name the failed store operation for error context.
const (
	OpQuery        = "query_markets"
	OpCount        = "count_markets"
	OpGetBySlug    = "get_market_by_slug"
	OpCountByState = "count_by_state"
	OpPing         = "ping"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
