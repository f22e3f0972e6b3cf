// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_form.go -package=mock

// Clock supplies the current instant as an ISO-8601 string.
type Clock interface {
	Now() string
}

// IDGenerator produces session identifiers.
type IDGenerator interface {
	Generate() string
}

// Observer is notified after every completed session transition.
// It is called outside the session lock and may read the session. Events
// from concurrent callers may arrive in a different order than the
// transitions they describe.
type Observer interface {
	OnEvent(Event)
}
