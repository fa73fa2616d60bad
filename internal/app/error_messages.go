// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// contact server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of failure envelopes. Keeping them in one place keeps the
// wording consistent throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgMissingAPIKey is returned when a request to /api has no ApiKey
	// header.
	MsgMissingAPIKey = "missing api key"

	// MsgInvalidAPIKey is returned when the ApiKey header does not match the
	// configured key.
	MsgInvalidAPIKey = "invalid api key"

	// MsgContactNotFound is returned when a get, update or delete targets a
	// contact id that does not exist.
	MsgContactNotFound = "user not found"

	// MsgContactAlreadyExists is returned when an insert collides with an
	// existing contact id.
	MsgContactAlreadyExists = "user already exists"

	// MsgNoImageProvided is returned when an upload carries no "image" part.
	MsgNoImageProvided = "no image provided"

	// MsgImageTooLarge is returned when an upload exceeds the size limit.
	MsgImageTooLarge = "image is too large"

	// MsgUnsupportedImageType is returned for uploads that are not one of
	// the accepted image formats.
	MsgUnsupportedImageType = "unsupported image type"

	// MsgImageNotFound is returned when a requested image file does not
	// exist or its name is not a plain file name.
	MsgImageNotFound = "image not found"

	MsgContactDeleted = "user deleted"
)
