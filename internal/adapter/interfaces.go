// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote contact store.
//
// [RemoteContactStore] decouples the client services from the REST contract
// of the store, and [ImageTransferService] uploads local profile images. Both
// ship HTTP implementations built on resty ([NewHTTPContactStore],
// [NewHTTPImageTransfer]).
//
// Error values defined in errors.go are mapped from transport failures and
// HTTP status codes by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrNotFound] for 404,
// [ErrNetwork] for an unreachable host).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-phonebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteContactStore is the authoritative store of contact records.
// Every method performs exactly one request and never retries.
type RemoteContactStore interface {
	// List returns every contact. Optional fields missing from the response
	// decode to their zero values.
	List(ctx context.Context) ([]models.Contact, error)

	// Get returns the contact with id, or [ErrNotFound].
	Get(ctx context.Context, id string) (models.Contact, error)

	// Create persists a new contact and returns it as stored, with the
	// identifier and creation time assigned by the store.
	Create(ctx context.Context, payload models.ContactPayload) (models.Contact, error)

	// Update replaces the writable fields of contact id and returns the
	// stored record. Returns [ErrNotFound] for a stale id.
	Update(ctx context.Context, id string, payload models.ContactPayload) (models.Contact, error)

	// Delete removes contact id. Returns [ErrNotFound] for a stale id.
	Delete(ctx context.Context, id string) error
}

// ImageTransferService uploads a local image file and returns the absolute
// URL it is served from. Every failure is reported as [ErrUpload].
type ImageTransferService interface {
	Upload(ctx context.Context, localRef string) (string, error)
}
