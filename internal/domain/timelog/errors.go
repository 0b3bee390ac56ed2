package timelog

import "errors"

var (
	// ErrInvalidInput indicates invalid category or log input.
	ErrInvalidInput = errors.New("invalid timelog input")
	// ErrConfigNotFound indicates no configuration has been stored yet.
	ErrConfigNotFound = errors.New("configuration not found")
)
