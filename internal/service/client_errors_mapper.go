// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-phonebook/internal/adapter"
	"github.com/MKhiriev/go-phonebook/internal/store"
	"github.com/MKhiriev/go-phonebook/models"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The adapter error stays in the chain so its message is kept.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUpload):
		return fmt.Errorf("%w: %w", ErrUpload, err)
	case errors.Is(err, adapter.ErrNetwork):
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrContactNotFound, err)
	}

	// bad request, auth failures, conflicts and 5xx
	return fmt.Errorf("%w: %w", ErrServer, err)
}

// mirrorOutcome classifies an absorbed device store error. A missing
// permission means the write was never attempted.
func mirrorOutcome(err error) models.MirrorOutcome {
	switch {
	case err == nil:
		return models.MirrorSucceeded
	case errors.Is(err, store.ErrPermissionDenied):
		return models.MirrorSkipped
	default:
		return models.MirrorFailedIgnored
	}
}
