// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/MKhiriev/go-signup-form/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validForm() models.FormFields {
	return models.FormFields{
		Name:            "John Doe",
		Email:           "john@example.com",
		Password:        "Password123",
		ConfirmPassword: "Password123",
		Age:             25,
	}
}

func requireFieldError(t *testing.T, fe *models.FieldError, field models.Field, kind models.ErrorKind, msg string) {
	t.Helper()
	require.NotNil(t, fe)
	assert.Equal(t, field, fe.Field)
	assert.Equal(t, kind, fe.Kind)
	assert.Equal(t, msg, fe.Message)
}

// ---------------------------------------------------------------------------
// TestValidateName
// ---------------------------------------------------------------------------

func TestValidateName(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		requireFieldError(t, ValidateName(""), models.FieldName, models.KindRequired, MsgNameRequired)
	})

	t.Run("whitespace only", func(t *testing.T) {
		requireFieldError(t, ValidateName(" \t\n "), models.FieldName, models.KindRequired, MsgNameRequired)
	})

	t.Run("byte order marks and separators only", func(t *testing.T) {
		requireFieldError(t, ValidateName("\ufeff\ufeff\ufeff"), models.FieldName, models.KindRequired, MsgNameRequired)
		requireFieldError(t, ValidateName("\u00a0\u2028\v"), models.FieldName, models.KindRequired, MsgNameRequired)
	})

	t.Run("byte order mark does not count towards length", func(t *testing.T) {
		requireFieldError(t, ValidateName("\ufeffJo\ufeff"), models.FieldName, models.KindTooShort, MsgNameTooShort)
	})

	t.Run("too short", func(t *testing.T) {
		requireFieldError(t, ValidateName("Jo"), models.FieldName, models.KindTooShort, "Name must be at least 3 characters")
	})

	t.Run("short after trimming", func(t *testing.T) {
		requireFieldError(t, ValidateName("  Jo  "), models.FieldName, models.KindTooShort, MsgNameTooShort)
	})

	t.Run("exactly minimum", func(t *testing.T) {
		assert.Nil(t, ValidateName("Joe"))
	})

	t.Run("multibyte counts runes", func(t *testing.T) {
		assert.Nil(t, ValidateName("Zoë"))
		assert.NotNil(t, ValidateName("Zö"))
	})

	t.Run("emoji counts as one character", func(t *testing.T) {
		requireFieldError(t, ValidateName("😀a"), models.FieldName, models.KindTooShort, MsgNameTooShort)
		assert.Nil(t, ValidateName("😀ab"))
	})

	t.Run("padded but long enough", func(t *testing.T) {
		assert.Nil(t, ValidateName("  John  "))
	})
}

// ---------------------------------------------------------------------------
// TestValidateEmail
// ---------------------------------------------------------------------------

func TestValidateEmail(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		requireFieldError(t, ValidateEmail(""), models.FieldEmail, models.KindRequired, MsgEmailRequired)
	})

	t.Run("whitespace only", func(t *testing.T) {
		requireFieldError(t, ValidateEmail("   "), models.FieldEmail, models.KindRequired, MsgEmailRequired)
	})

	t.Run("byte order mark only", func(t *testing.T) {
		requireFieldError(t, ValidateEmail("\ufeff"), models.FieldEmail, models.KindRequired, MsgEmailRequired)
		requireFieldError(t, ValidateEmail("\u3000\ufeff"), models.FieldEmail, models.KindRequired, MsgEmailRequired)
	})

	valid := []string{
		"a@b.com",
		"john@example.com",
		"first.last@sub.example.co.uk",
		"a@b.c.d",
		"user+tag@example.org",
	}
	for _, email := range valid {
		t.Run("valid "+email, func(t *testing.T) {
			assert.Nil(t, ValidateEmail(email))
		})
	}

	invalid := []string{
		"plainaddress",
		"@example.com",
		"john@",
		"john@example",
		"john@@example.com",
		"jo@hn@example.com",
		"john doe@example.com",
		" john@example.com",
		"john@example.com ",
		"john@exa\tmple.com",
		"john@example.",
		"john@.com",
		"john x@example.com",
	}
	for _, email := range invalid {
		t.Run("invalid "+email, func(t *testing.T) {
			requireFieldError(t, ValidateEmail(email), models.FieldEmail, models.KindInvalidFormat, MsgEmailInvalid)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidatePassword
// ---------------------------------------------------------------------------

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		kind     models.ErrorKind
		msg      string
	}{
		{name: "empty", password: "", kind: models.KindRequired, msg: MsgPasswordRequired},
		{name: "too short", password: "Pass1", kind: models.KindTooShort, msg: "Password must be at least 8 characters"},
		{name: "short wins over missing uppercase", password: "abc", kind: models.KindTooShort, msg: MsgPasswordTooShort},
		{name: "no uppercase", password: "password123", kind: models.KindInvalidFormat, msg: MsgPasswordNoUppercase},
		{name: "uppercase wins over digit", password: "password", kind: models.KindInvalidFormat, msg: MsgPasswordNoUppercase},
		{name: "no digit", password: "Password", kind: models.KindInvalidFormat, msg: MsgPasswordNoDigit},
		{name: "non-ascii uppercase does not count", password: "Ñandú1234", kind: models.KindInvalidFormat, msg: MsgPasswordNoUppercase},
		{name: "whitespace is not trimmed", password: "        ", kind: models.KindInvalidFormat, msg: MsgPasswordNoUppercase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireFieldError(t, ValidatePassword(tt.password), models.FieldPassword, tt.kind, tt.msg)
		})
	}

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, ValidatePassword("Password1"))
		assert.Nil(t, ValidatePassword("12345678A"))
	})
}

// ---------------------------------------------------------------------------
// TestValidateConfirmPassword
// ---------------------------------------------------------------------------

func TestValidateConfirmPassword(t *testing.T) {
	t.Run("equal", func(t *testing.T) {
		assert.Nil(t, ValidateConfirmPassword("Password123", "Password123"))
	})

	t.Run("both empty match", func(t *testing.T) {
		assert.Nil(t, ValidateConfirmPassword("", ""))
	})

	t.Run("different", func(t *testing.T) {
		requireFieldError(t, ValidateConfirmPassword("Password123", "Password124"),
			models.FieldConfirmPassword, models.KindMismatch, MsgPasswordsDoNotMatch)
	})

	t.Run("trailing whitespace differs", func(t *testing.T) {
		assert.NotNil(t, ValidateConfirmPassword("Password123", "Password123 "))
	})

	t.Run("confirmation empty", func(t *testing.T) {
		assert.NotNil(t, ValidateConfirmPassword("Password123", ""))
	})
}

// ---------------------------------------------------------------------------
// TestValidateAge
// ---------------------------------------------------------------------------

func TestValidateAge(t *testing.T) {
	tests := []struct {
		name string
		age  int
		kind models.ErrorKind
		msg  string
	}{
		{name: "zero is required", age: 0, kind: models.KindRequired, msg: MsgAgeRequired},
		{name: "negative", age: -5, kind: models.KindOutOfRange, msg: MsgAgeBelowMinimum},
		{name: "seventeen", age: 17, kind: models.KindOutOfRange, msg: "You must be at least 18 years old"},
		{name: "one hundred twenty one", age: 121, kind: models.KindOutOfRange, msg: MsgAgeInvalid},
		{name: "one hundred fifty", age: 150, kind: models.KindOutOfRange, msg: "Please enter a valid age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireFieldError(t, ValidateAge(tt.age), models.FieldAge, tt.kind, tt.msg)
		})
	}

	for _, age := range []int{18, 25, 120} {
		assert.Nil(t, ValidateAge(age), "age %d should pass", age)
	}
}

// ---------------------------------------------------------------------------
// TestValidateUserForm
// ---------------------------------------------------------------------------

func TestValidateUserForm(t *testing.T) {
	t.Run("all empty reports every field as required", func(t *testing.T) {
		result := ValidateUserForm(models.FormFields{})

		require.Len(t, result, 4)
		assert.Equal(t, []models.Field{
			models.FieldName,
			models.FieldEmail,
			models.FieldPassword,
			models.FieldAge,
		}, result.Fields())
		for _, fe := range result {
			assert.Equal(t, models.KindRequired, fe.Kind)
		}
	})

	t.Run("short name only", func(t *testing.T) {
		form := models.FormFields{
			Name:            "Jo",
			Email:           "a@b.com",
			Password:        "Password1",
			ConfirmPassword: "Password1",
			Age:             25,
		}

		result := ValidateUserForm(form)

		require.Len(t, result, 1)
		assert.Equal(t, models.FieldName, result[0].Field)
		assert.Equal(t, models.KindTooShort, result[0].Kind)
	})

	t.Run("valid form", func(t *testing.T) {
		assert.Empty(t, ValidateUserForm(validForm()))
	})

	t.Run("password mismatch", func(t *testing.T) {
		form := validForm()
		form.ConfirmPassword = "Password124"

		result := ValidateUserForm(form)

		require.Len(t, result, 1)
		assert.Equal(t, models.FieldConfirmPassword, result[0].Field)
		assert.Equal(t, MsgPasswordsDoNotMatch, result[0].Message)
	})

	t.Run("age out of range", func(t *testing.T) {
		form := validForm()
		form.Age = 150

		result := ValidateUserForm(form)

		require.Len(t, result, 1)
		assert.Equal(t, models.FieldAge, result[0].Field)
		assert.Equal(t, models.KindOutOfRange, result[0].Kind)
		assert.Equal(t, MsgAgeInvalid, result[0].Message)
	})

	t.Run("five errors in field order", func(t *testing.T) {
		form := models.FormFields{
			Name:            "Al",
			Email:           "not-an-email",
			Password:        "short",
			ConfirmPassword: "other",
			Age:             12,
		}

		result := ValidateUserForm(form)

		require.Len(t, result, 5)
		assert.Equal(t, models.Fields(), result.Fields())
	})

	t.Run("deterministic", func(t *testing.T) {
		form := models.FormFields{Name: " x ", Email: "bad", Age: 200}
		first := ValidateUserForm(form)
		second := ValidateUserForm(form)
		assert.Equal(t, first, second)
	})

	t.Run("does not modify input", func(t *testing.T) {
		form := models.FormFields{Name: "  John  ", Email: " a@b.com "}
		before := form
		ValidateUserForm(form)
		assert.Equal(t, before, form)
	})
}
