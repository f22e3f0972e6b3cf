// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-signup-form/models"
)

// SignupValidator implements the Validator interface for models.FormFields.
//
// A failed validation is returned as a models.ValidationResult error; use
// models.AsValidationResult to recover the ordered field errors.
type SignupValidator struct {
}

// NewSignupValidator constructs a new SignupValidator
// and returns it as the Validator interface.
func NewSignupValidator() Validator {
	return &SignupValidator{}
}

// Validate checks obj, which must be a models.FormFields value or pointer.
//
// When fields are given, only those fields are validated; names may be passed
// in any order, are reported in field order and are deduplicated. An unknown
// name yields ErrUnknownField. With no fields the whole form is validated.
func (v *SignupValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var form models.FormFields
	switch value := obj.(type) {
	case models.FormFields:
		form = value
	case *models.FormFields:
		if value == nil {
			return ErrUnsupportedType
		}
		form = *value
	default:
		return ErrUnsupportedType
	}

	targets, err := resolveFields(fields)
	if err != nil {
		return err
	}

	if result := validateFields(form, targets); !result.IsEmpty() {
		return result
	}
	return nil
}

// resolveFields maps field names onto known fields in validation order.
func resolveFields(names []string) ([]models.Field, error) {
	if len(names) == 0 {
		return models.Fields(), nil
	}

	requested := make(map[models.Field]struct{}, len(names))
	for _, name := range names {
		field := models.Field(name)
		if !field.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		requested[field] = struct{}{}
	}

	targets := make([]models.Field, 0, len(requested))
	for _, field := range models.Fields() {
		if _, ok := requested[field]; ok {
			targets = append(targets, field)
		}
	}
	return targets, nil
}
