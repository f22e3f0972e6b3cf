// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "errors"

var (
	// ErrUnknownField is returned when an update names a field outside the form.
	ErrUnknownField = errors.New("unknown form field")

	// ErrInvalidFieldValue is returned when an update carries a value of the
	// wrong Go type for its field (text fields take string, age takes int).
	ErrInvalidFieldValue = errors.New("invalid value type for form field")
)
