package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-signup-form/internal/form"
	"github.com/MKhiriev/go-signup-form/internal/logger"
	"github.com/MKhiriev/go-signup-form/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the terminal program.
type Options struct {
	AltScreen  bool
	InputWidth int
	BuildInfo  models.AppBuildInfo
}

type TUI struct {
	opts Options
	log  *logger.Logger
}

func New(opts Options, log *logger.Logger) (*TUI, error) {
	if opts.InputWidth <= 0 {
		return nil, fmt.Errorf("%w: input width %d", ErrInvalidOptions, opts.InputWidth)
	}
	return &TUI{opts: opts, log: log}, nil
}

// SignupFlow runs the signup screen for session until the user quits.
// It returns nil on a normal quit, including cancellation of ctx.
func (t *TUI) SignupFlow(ctx context.Context, session *form.Session) error {
	ctx = t.log.WithContext(ctx)
	model := NewSignupModel(ctx, session, t.opts.InputWidth, t.opts.BuildInfo)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run signup program: %w", err)
	}
	return nil
}
