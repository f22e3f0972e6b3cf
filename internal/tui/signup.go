package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-signup-form/internal/form"
	"github.com/MKhiriev/go-signup-form/internal/logger"
	"github.com/MKhiriev/go-signup-form/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

var fieldLabels = map[models.Field]string{
	models.FieldName:            "Name",
	models.FieldEmail:           "Email",
	models.FieldPassword:        "Password",
	models.FieldConfirmPassword: "Confirm Password",
	models.FieldAge:             "Age",
}

var fieldPlaceholders = map[models.Field]string{
	models.FieldName:            "Enter your full name",
	models.FieldEmail:           "example@email.com",
	models.FieldPassword:        "Min. 8 characters, 1 uppercase, 1 number",
	models.FieldConfirmPassword: "Re-enter your password",
	models.FieldAge:             "Must be 18 or older",
}

// SignupModel is the Bubble Tea model for the signup screen. It renders one
// text input per form field and mirrors every edit into a [form.Session].
// Enter submits the session; the error list, success banner and confirmation
// payload are read back from the session on every render.
type SignupModel struct {
	ctx     context.Context
	session *form.Session

	fields []models.Field
	inputs []textinput.Model
	focus  int

	status        string
	showBuildInfo bool
	buildInfo     models.AppBuildInfo

	copyToClipboard func(string) error
}

// NewSignupModel creates a [SignupModel] bound to session. The name field
// receives focus immediately; the password fields use masked echo.
func NewSignupModel(ctx context.Context, session *form.Session, inputWidth int, buildInfo models.AppBuildInfo) *SignupModel {
	fields := models.Fields()
	inputs := make([]textinput.Model, len(fields))

	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = fieldPlaceholders[field]
		in.Width = inputWidth
		switch field {
		case models.FieldPassword, models.FieldConfirmPassword:
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		case models.FieldAge:
			in.CharLimit = 4
		}
		inputs[i] = in
	}
	inputs[0].Focus()

	return &SignupModel{
		ctx:             ctx,
		session:         session,
		fields:          fields,
		inputs:          inputs,
		buildInfo:       buildInfo,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - tab / shift+tab (down / up): move focus between inputs.
//   - enter: submits the session.
//   - ctrl+r: resets the session and clears every input.
//   - ctrl+y: copies the confirmation payload to the clipboard.
//   - f1: toggles the build info window; esc closes it.
//   - ctrl+c: quits.
//
// All other key events go to the focused input; a changed value is written
// to the session, which returns it to the editing state.
func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			logger.FromContext(m.ctx).Warn().Err(msg.err).Msg("copy confirmation payload")
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied to clipboard"
		}
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	if m.showBuildInfo {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[m.focus].Value(); after != before {
		m.syncField(m.focus, after)
	}
	return m, cmd
}

func (m *SignupModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.quit):
		return tea.Quit, true
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = !m.showBuildInfo
		return nil, true
	case m.showBuildInfo:
		if key.Matches(msg, keys.back) {
			m.showBuildInfo = false
		}
		return nil, true
	case key.Matches(msg, keys.next):
		m.setFocus(m.focus + 1)
		return nil, true
	case key.Matches(msg, keys.prev):
		m.setFocus(m.focus - 1)
		return nil, true
	case key.Matches(msg, keys.submit):
		m.status = ""
		m.session.Submit()
		return nil, true
	case key.Matches(msg, keys.reset):
		m.resetForm()
		return nil, true
	case key.Matches(msg, keys.copy):
		return m.cmdCopy(), true
	}
	return nil, false
}

// syncField writes the raw value of input i to the session.
func (m *SignupModel) syncField(i int, value string) {
	field := m.fields[i]
	if field == models.FieldAge {
		m.session.SetAge(form.ParseAge(value))
		return
	}
	if err := m.session.SetText(field, value); err != nil {
		logger.FromContext(m.ctx).Error().Err(err).Str("field", field.String()).Msg("update field")
	}
}

func (m *SignupModel) cmdCopy() tea.Cmd {
	user, ok := m.session.CreatedUser()
	if !ok {
		m.status = "Nothing to copy yet"
		return clearStatusAfter(statusTTL)
	}

	write := m.copyToClipboard
	payload := user.Payload()
	return func() tea.Msg {
		return copiedMsg{err: write(payload)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// View implements [tea.Model]. Renders the form as a two-column table followed
// by the submit outcome taken from the session.
func (m *SignupModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	result := m.session.Result()

	var b strings.Builder
	for i, field := range m.fields {
		marker := " "
		if result.Has(field) {
			marker = errorStyle.Render("!")
		}
		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(padRight(fieldLabels[field], 17))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}
	b.WriteString("\n[Submit]\n")

	if !result.IsEmpty() {
		b.WriteString("\n")
		for _, msg := range result.Messages() {
			b.WriteString(errorStyle.Render("• " + msg))
			b.WriteString("\n")
		}
	}

	if m.session.IsSuccess() {
		b.WriteString("\n")
		b.WriteString(successStyle.Render("User created successfully!"))
		b.WriteString("\n")
	}

	if user, ok := m.session.CreatedUser(); ok {
		b.WriteString("\n")
		b.WriteString(user.Payload())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("USER SIGNUP", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: submit │ ctrl+r: reset │ ctrl+y: copy │ f1: about")
}

func (m *SignupModel) resetForm() {
	m.session.Reset()
	m.status = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.setFocus(0)
}

func (m *SignupModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
