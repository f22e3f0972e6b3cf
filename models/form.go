// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field names one of the five inputs of the signup form.
// The string values match the keys used by the presentation layer.
type Field string

const (
	// FieldName targets the user's display name.
	FieldName Field = "name"

	// FieldEmail targets the user's email address.
	FieldEmail Field = "email"

	// FieldPassword targets the chosen password.
	FieldPassword Field = "password"

	// FieldConfirmPassword targets the repeated password.
	FieldConfirmPassword Field = "confirmPassword"

	// FieldAge targets the user's age in whole years.
	FieldAge Field = "age"
)

// fieldOrder is the fixed order in which fields are validated and reported.
var fieldOrder = [...]Field{
	FieldName,
	FieldEmail,
	FieldPassword,
	FieldConfirmPassword,
	FieldAge,
}

// Fields returns all form fields in validation order.
// The returned slice is a fresh copy and may be modified by the caller.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder[:])
	return out
}

// IsValid reports whether f is one of the five known form fields.
func (f Field) IsValid() bool {
	return f.Index() >= 0
}

// Index returns the position of f in validation order, or -1 when f is unknown.
func (f Field) Index() int {
	for i, known := range fieldOrder {
		if f == known {
			return i
		}
	}
	return -1
}

// IsText reports whether f holds raw text (every field except age).
func (f Field) IsText() bool {
	return f.IsValid() && f != FieldAge
}

func (f Field) String() string {
	return string(f)
}

// FormFields holds the current values of the signup form.
//
// Text fields keep the raw input exactly as typed, whitespace included.
// Age is already parsed; a value of zero means "not provided".
type FormFields struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Age             int    `json:"age"`
}

// Text returns the raw value of a text field and false for age or unknown fields.
func (f FormFields) Text(field Field) (string, bool) {
	switch field {
	case FieldName:
		return f.Name, true
	case FieldEmail:
		return f.Email, true
	case FieldPassword:
		return f.Password, true
	case FieldConfirmPassword:
		return f.ConfirmPassword, true
	default:
		return "", false
	}
}
