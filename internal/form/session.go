// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-signup-form/internal/utils"
	"github.com/MKhiriev/go-signup-form/internal/validators"
	"github.com/MKhiriev/go-signup-form/models"
)

// Session owns the values of one signup form and the outcome of its last
// submit. The zero value is not usable; construct it with NewSession.
//
// Edits and resets always return the session to models.StateEditing and
// discard the previous validation result and created user.
type Session struct {
	mu sync.Mutex

	id        string
	clock     Clock
	idGen     IDGenerator
	observer  Observer
	validator validators.Validator

	fields models.FormFields
	state  models.SessionState
	result models.ValidationResult
	user   *models.CreatedUser
}

// NewSession creates an empty session in the editing state.
// Without options it uses the signup validator, the system clock, UUIDv7
// identifiers and no observer.
func NewSession(opts ...Option) *Session {
	s := &Session{
		clock:     utils.NewSystemClock(),
		idGen:     utils.NewUUIDGenerator(),
		observer:  nopObserver{},
		validator: validators.NewSignupValidator(),
		state:     models.StateEditing,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.id = s.idGen.Generate()

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// UpdateField replaces the value of a single field. Text fields take a
// string stored as-is, age takes an already parsed int.
//
// An unknown field or a value of the wrong type is rejected with
// ErrUnknownField or ErrInvalidFieldValue and leaves the session unchanged.
func (s *Session) UpdateField(field models.Field, value any) error {
	switch v := value.(type) {
	case string:
		return s.SetText(field, v)
	case int:
		if field != models.FieldAge {
			if !field.IsValid() {
				return fmt.Errorf("%w: %q", ErrUnknownField, field)
			}
			return fmt.Errorf("%w: %s takes text, got int", ErrInvalidFieldValue, field)
		}
		s.SetAge(v)
		return nil
	default:
		if !field.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		return fmt.Errorf("%w: %s got %T", ErrInvalidFieldValue, field, value)
	}
}

// SetText replaces the raw value of a text field.
func (s *Session) SetText(field models.Field, value string) error {
	if !field.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if !field.IsText() {
		return fmt.Errorf("%w: %s takes int, got text", ErrInvalidFieldValue, field)
	}

	s.edit(field, func(f *models.FormFields) {
		switch field {
		case models.FieldName:
			f.Name = value
		case models.FieldEmail:
			f.Email = value
		case models.FieldPassword:
			f.Password = value
		case models.FieldConfirmPassword:
			f.ConfirmPassword = value
		}
	})
	return nil
}

// SetAge replaces the age. Callers convert raw input first, see ParseAge.
func (s *Session) SetAge(age int) {
	s.edit(models.FieldAge, func(f *models.FormFields) {
		f.Age = age
	})
}

func (s *Session) edit(field models.Field, apply func(*models.FormFields)) {
	s.mu.Lock()
	from := s.state
	apply(&s.fields)
	s.clearOutcome()
	s.mu.Unlock()

	s.observer.OnEvent(Event{
		SessionID: s.id,
		Type:      EventFieldUpdated,
		Field:     field,
		From:      from,
		To:        models.StateEditing,
	})
}

// Submit validates the current fields and records the outcome.
//
// With errors the session moves to models.StateSubmittedInvalid and keeps
// the fields untouched. Without errors it creates a user stamped by the
// clock and moves to models.StateSubmittedValid. Submitting again without an
// edit in between keeps the existing user. The returned result is a copy
// and is empty on success.
func (s *Session) Submit() models.ValidationResult {
	s.mu.Lock()
	if s.state == models.StateSubmittedValid {
		s.mu.Unlock()
		return nil
	}

	from := s.state
	result := s.validate()

	var created *models.CreatedUser
	if result.IsEmpty() {
		user := models.NewCreatedUser(s.fields, s.clock.Now())
		s.user = &user
		s.result = nil
		s.state = models.StateSubmittedValid
		created = &user
	} else {
		s.user = nil
		s.result = result
		s.state = models.StateSubmittedInvalid
	}
	to := s.state
	s.mu.Unlock()

	event := Event{
		SessionID: s.id,
		Type:      EventSubmitted,
		From:      from,
		To:        to,
		Result:    result.Clone(),
	}
	if created != nil {
		user := *created
		event.User = &user
	}
	s.observer.OnEvent(event)

	return result.Clone()
}

// validate runs the configured validator over the whole form. An error that
// does not carry field errors falls back to the built-in rules, so the
// outcome is always expressed as a ValidationResult. Must be called with
// s.mu held.
func (s *Session) validate() models.ValidationResult {
	err := s.validator.Validate(context.Background(), s.fields)
	if err == nil {
		return nil
	}
	if result, ok := models.AsValidationResult(err); ok {
		return result
	}
	return validators.ValidateUserForm(s.fields)
}

// Reset empties every field and discards any submit outcome.
func (s *Session) Reset() {
	s.mu.Lock()
	from := s.state
	s.fields = models.FormFields{}
	s.clearOutcome()
	s.mu.Unlock()

	s.observer.OnEvent(Event{
		SessionID: s.id,
		Type:      EventReset,
		From:      from,
		To:        models.StateEditing,
	})
}

// clearOutcome must be called with s.mu held.
func (s *Session) clearOutcome() {
	s.state = models.StateEditing
	s.result = nil
	s.user = nil
}

// Fields returns a copy of the current field values.
func (s *Session) Fields() models.FormFields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields
}

// Result returns a copy of the errors from the last submit. It is empty
// while editing and after a successful submit.
func (s *Session) Result() models.ValidationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result.Clone()
}

// State returns the current lifecycle state.
func (s *Session) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CreatedUser returns the user created by the last successful submit.
func (s *Session) CreatedUser() (models.CreatedUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.CreatedUser{}, false
	}
	return *s.user, true
}

// IsSuccess reports whether the last submit succeeded and no edit followed.
func (s *Session) IsSuccess() bool {
	return s.State() == models.StateSubmittedValid
}
