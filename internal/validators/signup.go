// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-signup-form/models"
)

// Signup rule constants.
const (
	MinNameLength     = 3
	MinPasswordLength = 8
	MinAge            = 18
	MaxAge            = 120
)

// Messages reported by the signup validators.
const (
	MsgNameRequired          = "Name is required"
	MsgEmailRequired         = "Email is required"
	MsgEmailInvalid          = "Please enter a valid email address"
	MsgPasswordRequired      = "Password is required"
	MsgPasswordNoUppercase   = "Password must contain at least one uppercase letter"
	MsgPasswordNoDigit       = "Password must contain at least one number"
	MsgPasswordsDoNotMatch   = "Passwords do not match"
	MsgAgeRequired           = "Age is required"
	MsgAgeInvalid            = "Please enter a valid age"
	msgNameTooShortFormat    = "Name must be at least %d characters"
	msgPasswordTooShortFmt   = "Password must be at least %d characters"
	msgAgeBelowMinimumFormat = "You must be at least %d years old"
)

var (
	MsgNameTooShort     = fmt.Sprintf(msgNameTooShortFormat, MinNameLength)
	MsgPasswordTooShort = fmt.Sprintf(msgPasswordTooShortFmt, MinPasswordLength)
	MsgAgeBelowMinimum  = fmt.Sprintf(msgAgeBelowMinimumFormat, MinAge)
)

var (
	// emailRegex accepts local@domain.suffix with exactly one "@" and no
	// whitespace anywhere. The dot may sit anywhere after the "@".
	emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// isFormSpace reports whether r is one of the characters excluded by
// emailRegex: ASCII whitespace, vertical tab, Unicode separators and U+FEFF.
func isFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF':
		return true
	}
	return unicode.In(r, unicode.Z)
}

func trimFormSpace(s string) string {
	return strings.TrimFunc(s, isFormSpace)
}

func fieldError(field models.Field, kind models.ErrorKind, msg string) *models.FieldError {
	return &models.FieldError{Field: field, Kind: kind, Message: msg}
}

// ValidateName checks the display name. Surrounding whitespace is ignored for
// both the emptiness and the length check. Length counts Unicode code points.
func ValidateName(name string) *models.FieldError {
	trimmed := trimFormSpace(name)
	if trimmed == "" {
		return fieldError(models.FieldName, models.KindRequired, MsgNameRequired)
	}
	if utf8.RuneCountInString(trimmed) < MinNameLength {
		return fieldError(models.FieldName, models.KindTooShort, MsgNameTooShort)
	}
	return nil
}

// ValidateEmail checks that email is present and shaped like local@domain.tld.
// The pattern runs against the untrimmed value, so padded input is invalid.
func ValidateEmail(email string) *models.FieldError {
	if trimFormSpace(email) == "" {
		return fieldError(models.FieldEmail, models.KindRequired, MsgEmailRequired)
	}
	if !emailRegex.MatchString(email) {
		return fieldError(models.FieldEmail, models.KindInvalidFormat, MsgEmailInvalid)
	}
	return nil
}

// ValidatePassword applies the password rules in order and reports the first
// failure: presence, minimum length, an ASCII uppercase letter, a digit.
func ValidatePassword(password string) *models.FieldError {
	switch {
	case password == "":
		return fieldError(models.FieldPassword, models.KindRequired, MsgPasswordRequired)
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return fieldError(models.FieldPassword, models.KindTooShort, MsgPasswordTooShort)
	case !uppercaseRegex.MatchString(password):
		return fieldError(models.FieldPassword, models.KindInvalidFormat, MsgPasswordNoUppercase)
	case !digitRegex.MatchString(password):
		return fieldError(models.FieldPassword, models.KindInvalidFormat, MsgPasswordNoDigit)
	}
	return nil
}

// ValidateConfirmPassword reports a mismatch unless both strings are
// byte-for-byte equal. Two empty strings match.
func ValidateConfirmPassword(password, confirmPassword string) *models.FieldError {
	if password != confirmPassword {
		return fieldError(models.FieldConfirmPassword, models.KindMismatch, MsgPasswordsDoNotMatch)
	}
	return nil
}

// ValidateAge checks the age in whole years. Zero is treated as "not
// provided", so a literal age of 0 reports required rather than too young.
func ValidateAge(age int) *models.FieldError {
	switch {
	case age == 0:
		return fieldError(models.FieldAge, models.KindRequired, MsgAgeRequired)
	case age < MinAge:
		return fieldError(models.FieldAge, models.KindOutOfRange, MsgAgeBelowMinimum)
	case age > MaxAge:
		return fieldError(models.FieldAge, models.KindOutOfRange, MsgAgeInvalid)
	}
	return nil
}

// ValidateUserForm runs every field validator in field order and collects all
// failures. Unlike the per-field rules it never stops early, so up to five
// errors may be reported, one per field. A valid form yields an empty result.
func ValidateUserForm(fields models.FormFields) models.ValidationResult {
	return validateFields(fields, models.Fields())
}

// validateField runs the rule for a single field.
// The boolean is false when field is not a known form field.
func validateField(fields models.FormFields, field models.Field) (*models.FieldError, bool) {
	switch field {
	case models.FieldName:
		return ValidateName(fields.Name), true
	case models.FieldEmail:
		return ValidateEmail(fields.Email), true
	case models.FieldPassword:
		return ValidatePassword(fields.Password), true
	case models.FieldConfirmPassword:
		return ValidateConfirmPassword(fields.Password, fields.ConfirmPassword), true
	case models.FieldAge:
		return ValidateAge(fields.Age), true
	default:
		return nil, false
	}
}

// validateFields validates the requested fields, which must already be known
// and in field order.
func validateFields(fields models.FormFields, targets []models.Field) models.ValidationResult {
	var result models.ValidationResult
	for _, field := range targets {
		if fe, _ := validateField(fields, field); fe != nil {
			result = append(result, *fe)
		}
	}
	return result
}
