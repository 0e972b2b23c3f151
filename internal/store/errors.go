package store

import "errors"

var (
	// ErrNotFound covers both true absence and ownership denial. The two
	// are never distinguishable to a caller.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is a unique-constraint violation, e.g. a taken subdomain.
	ErrConflict = errors.New("already taken")

	// ErrValidation is missing or malformed input, detected before any
	// mutation.
	ErrValidation = errors.New("invalid input")
)
