// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"github.com/MKhiriev/go-signup-form/internal/logger"
)

// LogObserver writes session transitions to a structured logger.
// Field values are never logged; created users are logged without password.
type LogObserver struct {
	log *logger.Logger
}

// NewLogObserver returns an Observer that logs to log.
func NewLogObserver(log *logger.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnEvent(e Event) {
	switch e.Type {
	case EventFieldUpdated:
		o.log.Debug().
			Str("session_id", e.SessionID).
			Str("field", e.Field.String()).
			Str("from", e.From.String()).
			Msg("field updated")
	case EventReset:
		o.log.Debug().
			Str("session_id", e.SessionID).
			Str("from", e.From.String()).
			Msg("form reset")
	case EventSubmitted:
		if e.User == nil {
			fields := make([]string, 0, len(e.Result))
			for _, f := range e.Result.Fields() {
				fields = append(fields, f.String())
			}
			o.log.Warn().
				Str("session_id", e.SessionID).
				Strs("invalid_fields", fields).
				Int("errors", len(e.Result)).
				Msg("form submitted with validation errors")
			return
		}
		o.log.Info().
			Str("session_id", e.SessionID).
			Str("name", e.User.Name).
			Str("email", e.User.Email).
			Int("age", e.User.Age).
			Str("created_at", e.User.CreatedAt).
			Msg("User created successfully")
	}
}
