// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// CreatedUser is the record produced by a successful signup submission.
// It is built by value from the form fields, so later edits to the form
// never reach an already created record.
type CreatedUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`

	// Password is copied verbatim from the form. Hashing is left to whoever
	// persists the record.
	Password string `json:"password"`

	Age int `json:"age"`

	// CreatedAt is the ISO-8601 instant at which the record was created.
	CreatedAt string `json:"createdAt"`
}

// NewCreatedUser builds a CreatedUser from the submitted form values.
func NewCreatedUser(fields FormFields, createdAt string) CreatedUser {
	return CreatedUser{
		Name:      fields.Name,
		Email:     fields.Email,
		Password:  fields.Password,
		Age:       fields.Age,
		CreatedAt: createdAt,
	}
}

// Payload renders the record as two-space indented JSON for display.
func (u CreatedUser) Payload() string {
	b, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
