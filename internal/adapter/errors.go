package adapter

import "errors"

var (
	// ErrNetwork reports that the remote store could not be reached.
	ErrNetwork = errors.New("remote store unreachable")
	// ErrServer reports a 5xx response, an unexpected status or a response
	// that could not be decoded.
	ErrServer = errors.New("remote store error")

	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("contact not found")
	ErrConflict     = errors.New("conflict")

	// ErrUpload wraps every image upload failure.
	ErrUpload = errors.New("image upload failed")
)
