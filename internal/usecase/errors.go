package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrIntegrity             = errors.New("ledger integrity violation")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
