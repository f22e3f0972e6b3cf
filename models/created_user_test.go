package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCreatedUser(t *testing.T) {
	fields := FormFields{
		Name:            "John Doe",
		Email:           "john@example.com",
		Password:        "Password123",
		ConfirmPassword: "Password123",
		Age:             25,
	}

	u := NewCreatedUser(fields, "2026-10-18T12:00:00.000Z")
	fields.Name = "Changed"

	assert.Equal(t, CreatedUser{
		Name:      "John Doe",
		Email:     "john@example.com",
		Password:  "Password123",
		Age:       25,
		CreatedAt: "2026-10-18T12:00:00.000Z",
	}, u)
}

func TestCreatedUser_Payload(t *testing.T) {
	u := CreatedUser{
		Name:      "John Doe",
		Email:     "john@example.com",
		Password:  "Password123",
		Age:       25,
		CreatedAt: "2026-10-18T12:00:00.000Z",
	}

	want := `{
  "name": "John Doe",
  "email": "john@example.com",
  "password": "Password123",
  "age": 25,
  "createdAt": "2026-10-18T12:00:00.000Z"
}`
	assert.Equal(t, want, u.Payload())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "2026-10-18", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "2026-10-18", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "1.0.0 (abc123, 2026-10-18)", info.String())
}
