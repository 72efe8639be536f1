package models

import "errors"

// Error taxonomy surfaced to API clients. Layers below the handlers wrap
// these with fmt.Errorf("...: %w", err); the handlers map them to HTTP
// status codes in one place.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
)
