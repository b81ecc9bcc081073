// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account input before it reaches storage.
//
// A Validator accepts optional field names that restrict validation to a
// subset of the value's fields; with no names every field is checked.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
