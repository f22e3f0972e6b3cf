// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is the position of a form session in its submit lifecycle.
type SessionState string

const (
	// StateEditing is the initial state and the state after any edit or reset.
	StateEditing SessionState = "editing"

	// StateSubmittedInvalid means the last submit reported at least one error.
	StateSubmittedInvalid SessionState = "submitted_invalid"

	// StateSubmittedValid means the last submit produced a CreatedUser.
	StateSubmittedValid SessionState = "submitted_valid"
)

func (s SessionState) String() string {
	return string(s)
}
