// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldRules: a declarative rule set (required, number, range, length,
//     allowed values) applied to named string fields.
//
// Usage patterns:
//  1. Declare rules with [New] and [FieldRules.Field].
//  2. Pass a map[string]string or any [Fielder] to Validate.
//  3. Match failures with [errors.Is] against the Err* sentinels or unwrap
//     them to [*FieldError] with [errors.As].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// Fielder is implemented by values that can expose their validated
// attributes as a flat map of field name to raw string value.
type Fielder interface {
	Fields() map[string]string
}
