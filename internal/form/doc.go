// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form holds the signup form session: the current field values,
// the outcome of the last submit and the transitions between them.
//
// A Session is created per form instance and discarded with it; there is no
// package-level state. Every operation runs to completion before the next
// one starts, and a submit publishes its validation result and created user
// together.
//
//	Editing ──submit, errors──▶ SubmittedInvalid
//	Editing ──submit, valid───▶ SubmittedValid
//	any     ──edit / reset────▶ Editing
package form
