package services

import "errors"

// Every service failure wraps one of these sentinels so the HTTP layer can
// map it to a status code with errors.Is. All are terminal; the services
// never retry a failed storage call.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid input")
)
