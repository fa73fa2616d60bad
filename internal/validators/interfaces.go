// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks contact records before they are stored or sent.
// The same rules run on the server, in front of the Postgres repository,
// and on the client, before the reconciliation orchestrator does any I/O.
package validators

import "context"

// Validator validates v. fields, when given, restrict the check to the
// named fields (see the Field constants); unknown names yield
// [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
