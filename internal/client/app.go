package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-signup-form/internal/form"
	"github.com/MKhiriev/go-signup-form/internal/logger"
)

var ErrNilUI = errors.New("signup ui is required")

type App struct {
	ui  SignupUI
	log *logger.Logger
}

func NewApp(ui SignupUI, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{ui: ui, log: log}, nil
}

// Run opens a fresh form session, hands it to the UI and discards it once
// the UI returns.
func (a *App) Run(ctx context.Context) error {
	session := form.NewSession(form.WithObserver(form.NewLogObserver(a.log)))
	a.log.Info().Str("session_id", session.ID()).Msg("signup session started")

	if err := a.ui.SignupFlow(ctx, session); err != nil {
		return fmt.Errorf("signup flow: %w", err)
	}

	a.log.Info().
		Str("session_id", session.ID()).
		Str("state", session.State().String()).
		Msg("signup session closed")
	return nil
}
