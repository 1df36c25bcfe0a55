// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks remote bookmark updates before they take part
// in a merge.
//
// A Validator reports the first failed check as a sentinel error. Callers
// may restrict validation to specific checks by passing field names; the
// merger uses the sentinel to count dropped updates per reason.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
