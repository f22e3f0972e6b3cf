// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-signup-form/internal/form"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// SignupUI presents a form session to the user until they leave the form.
type SignupUI interface {
	SignupFlow(ctx context.Context, session *form.Session) error
}
