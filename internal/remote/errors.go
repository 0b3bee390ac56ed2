package remote

import "errors"

var (
	// ErrUnavailable indicates the remote store could not be reached or
	// answered with a non-2xx status.
	ErrUnavailable = errors.New("remote store unavailable")
	// ErrMalformed indicates the remote store answered with an unexpected body.
	ErrMalformed = errors.New("malformed remote response")
)
