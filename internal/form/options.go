// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "github.com/MKhiriev/go-signup-form/internal/validators"

// Option configures a Session at construction time.
type Option func(*Session)

// WithClock sets the timestamp source for created users.
func WithClock(clock Clock) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithObserver sets the transition observer.
func WithObserver(observer Observer) Option {
	return func(s *Session) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// WithIDGenerator sets the source of the session identifier.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Session) {
		if gen != nil {
			s.idGen = gen
		}
	}
}

// WithValidator replaces the rules applied on submit.
func WithValidator(validator validators.Validator) Option {
	return func(s *Session) {
		if validator != nil {
			s.validator = validator
		}
	}
}
