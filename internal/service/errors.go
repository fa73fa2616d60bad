package service

import "errors"

// Errors surfaced by the client services. Remote and upload failures are
// the only ones reported to the caller; device and history failures are
// absorbed before they reach it.
var (
	// ErrInvalidInput is returned before any I/O when a save or delete
	// request does not satisfy the validity precondition. It wraps the
	// concrete validators error.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNetwork is returned when the remote store cannot be reached.
	ErrNetwork = errors.New("remote store unreachable")

	// ErrServer is returned when the remote store rejects a request.
	ErrServer = errors.New("remote store error")

	// ErrContactNotFound is returned for a stale contact id.
	ErrContactNotFound = errors.New("contact not found")

	// ErrUpload is returned when a local profile image could not be
	// uploaded. No remote write happens in that case.
	ErrUpload = errors.New("image upload failed")
)

// Errors of the server services.
var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrUnsupportedImageType is returned for uploads whose content type is
	// not one of the accepted image formats.
	ErrUnsupportedImageType = errors.New("unsupported image type")

	ErrPublicURLIsNotSpecified = errors.New("public url is not specified")
)
