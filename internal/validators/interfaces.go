// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the signup form rules.
//
// Core concepts:
//   - Per-field rule functions (ValidateName, ValidateEmail, ValidatePassword,
//     ValidateConfirmPassword, ValidateAge) return at most one error each.
//   - ValidateUserForm aggregates them in field order without stopping early.
//   - Validator: generic interface to validate arbitrary values, with optional
//     field-level scoping. SignupValidator adapts the rule functions to it.
//
// Every function here is pure: identical input always yields an identical
// result and no state is shared between calls.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_validators.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
