// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why a field failed validation.
type ErrorKind string

const (
	// KindRequired means the field was empty (or zero for age).
	KindRequired ErrorKind = "required"

	// KindTooShort means the value did not reach the minimum length.
	KindTooShort ErrorKind = "too_short"

	// KindInvalidFormat means the value did not match the expected shape.
	KindInvalidFormat ErrorKind = "invalid_format"

	// KindMismatch means two values that must be equal differ.
	KindMismatch ErrorKind = "mismatch"

	// KindOutOfRange means a numeric value fell outside the accepted bounds.
	KindOutOfRange ErrorKind = "out_of_range"
)

// FieldError is a single validation failure tied to one form field.
// Values are created fresh on every validation pass and never modified.
type FieldError struct {
	Field   Field     `json:"field"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult is the ordered outcome of validating a whole form.
// Entries follow field order and hold at most one error per field.
// An empty result means the form is valid.
type ValidationResult []FieldError

// Error implements the error interface so a non-empty result can be returned
// through error-typed APIs.
func (r ValidationResult) Error() string {
	if len(r) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(r))
	for _, e := range r {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsEmpty reports whether the result carries no errors.
func (r ValidationResult) IsEmpty() bool {
	return len(r) == 0
}

// Has reports whether the result holds an error for field.
func (r ValidationResult) Has(field Field) bool {
	_, ok := r.Get(field)
	return ok
}

// Get returns the error reported for field, if any.
func (r ValidationResult) Get(field Field) (FieldError, bool) {
	for _, e := range r {
		if e.Field == field {
			return e, true
		}
	}
	return FieldError{}, false
}

// Fields returns the fields that failed, in result order.
func (r ValidationResult) Fields() []Field {
	fields := make([]Field, 0, len(r))
	for _, e := range r {
		fields = append(fields, e.Field)
	}
	return fields
}

// Messages returns the user-facing messages in result order.
func (r ValidationResult) Messages() []string {
	msgs := make([]string, 0, len(r))
	for _, e := range r {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Clone returns a copy that shares no backing array with r.
// A nil or empty result clones to nil.
func (r ValidationResult) Clone() ValidationResult {
	if len(r) == 0 {
		return nil
	}
	out := make(ValidationResult, len(r))
	copy(out, r)
	return out
}

// AsValidationResult extracts a ValidationResult from err.
// It returns nil, false when err is nil or carries no validation result.
func AsValidationResult(err error) (ValidationResult, bool) {
	if err == nil {
		return nil, false
	}

	var result ValidationResult
	if errors.As(err, &result) {
		return result, true
	}
	return nil, false
}
