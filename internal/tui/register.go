package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

const (
	registerUsername = iota
	registerPassword
	registerRepeat
	registerFirstName
	registerLastName
)

// RegisterModel is the Bubble Tea model for the registration screen. It renders five
// text inputs (username, password, password confirmation, first and last name) and
// dispatches an async registration command on form submission.
// On success the model resets the form and navigates back to the menu, passing a
// [RegisterSuccessNotice] payload.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel] with five pre-configured text inputs.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	fields := make([]textinput.Model, 5)

	fields[registerUsername] = textinput.New()
	fields[registerUsername].Placeholder = "username"
	fields[registerUsername].CharLimit = validators.MaxNameLength
	fields[registerUsername].Width = 40
	fields[registerUsername].Focus()

	fields[registerPassword] = textinput.New()
	fields[registerPassword].Placeholder = "password"
	fields[registerPassword].EchoMode = textinput.EchoPassword
	fields[registerPassword].EchoCharacter = '*'
	fields[registerPassword].Width = 40

	fields[registerRepeat] = textinput.New()
	fields[registerRepeat].Placeholder = "repeat password"
	fields[registerRepeat].EchoMode = textinput.EchoPassword
	fields[registerRepeat].EchoCharacter = '*'
	fields[registerRepeat].Width = 40

	fields[registerFirstName] = textinput.New()
	fields[registerFirstName].Placeholder = "first name (optional)"
	fields[registerFirstName].CharLimit = validators.MaxNameLength
	fields[registerFirstName].Width = 40

	fields[registerLastName] = textinput.New()
	fields[registerLastName].Placeholder = "last name (optional)"
	fields[registerLastName].CharLimit = validators.MaxNameLength
	fields[registerLastName].Width = 40

	return &RegisterModel{
		ctx:    ctx,
		auth:   auth,
		inputs: fields,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult]: on error populates errMsg, on success resets the form
//     and navigates to the menu.
//   - esc: cancels and navigates back to the menu.
//   - tab, shift+tab: move focus between inputs.
//   - enter: checks that the passwords match and dispatches the async
//     registration command.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "menu",
				Payload: RegisterSuccessNotice{Username: result.Username},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			form := models.RegisterForm{
				Username:  strings.TrimSpace(m.inputs[registerUsername].Value()),
				Password:  m.inputs[registerPassword].Value(),
				FirstName: strings.TrimSpace(m.inputs[registerFirstName].Value()),
				LastName:  strings.TrimSpace(m.inputs[registerLastName].Value()),
			}
			if form.Password != m.inputs[registerRepeat].Value() {
				m.errMsg = "Passwords do not match."
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(form)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	labels := []string{"Username", "Password", "Repeat password", "First name", "Last name"}

	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", 17-len(label)))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Register...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(form models.RegisterForm) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		_, err := auth.Register(ctx, form)
		return RegisterResult{
			Err:      err,
			Username: form.Username,
		}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
