package repository

import "errors"

var (
	// ErrNotFound is returned when a requested document doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a document cannot be encoded for storage
	ErrInvalidInput = errors.New("invalid input")
)
