// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import "github.com/MKhiriev/go-signup-form/models"

// EventType names the operation that caused a transition.
type EventType string

const (
	EventFieldUpdated EventType = "field_updated"
	EventSubmitted    EventType = "submitted"
	EventReset        EventType = "reset"
)

// Event describes one completed transition of a Session.
type Event struct {
	SessionID string
	Type      EventType

	// Field is set for EventFieldUpdated only.
	Field models.Field

	From models.SessionState
	To   models.SessionState

	// Result holds the errors of an invalid submit.
	Result models.ValidationResult

	// User is set when a submit created a user.
	User *models.CreatedUser
}

type nopObserver struct{}

func (nopObserver) OnEvent(Event) {}
