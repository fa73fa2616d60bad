// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the API key middleware and the upload handler.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAPIKeyHeader is returned when the request carries no ApiKey
	// header at all.
	ErrEmptyAPIKeyHeader = errors.New("empty `ApiKey` header")

	// ErrInvalidAPIKey is returned when the ApiKey header does not match the
	// configured key.
	ErrInvalidAPIKey = errors.New("invalid `ApiKey` header")

	// ErrNoImageProvided is returned when a multipart upload has no "image"
	// part.
	ErrNoImageProvided = errors.New("no image provided")

	// ErrImageTooLarge is returned when an upload exceeds [MaxImageSize].
	ErrImageTooLarge = errors.New("image is too large")
)
