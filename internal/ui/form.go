package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/contactdesk/contactdesk/internal/client"
	"github.com/contactdesk/contactdesk/internal/validate"
)

// statusTTL is how long a transient form status message stays visible.
const statusTTL = 4 * time.Second

// field indices into FormModel.inputs.
const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldMessage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Phone", "Message"}
var fieldKeys = [fieldCount]string{"name", "email", "phone", "message"}

// FormModel captures new-contact input, mirrors the server's validation
// rules, and submits through the API client.
type FormModel struct {
	api API
	ctx context.Context

	inputs     [fieldCount]textinput.Model
	focused    int
	errors     map[string]string
	status     string
	statusErr  bool
	statusSeq  int
	submitting bool

	styles Styles
}

// NewFormModel creates the contact form with focus on the name field.
func NewFormModel(ctx context.Context, apiClient API) FormModel {
	m := FormModel{
		api:    apiClient,
		ctx:    ctx,
		errors: make(map[string]string),
		styles: DefaultStyles(),
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 200
		ti.Width = 36
		m.inputs[i] = ti
	}
	m.inputs[fieldName].Placeholder = "Jane Doe"
	m.inputs[fieldEmail].Placeholder = "jane@example.com"
	m.inputs[fieldPhone].Placeholder = "5551234567"
	m.inputs[fieldPhone].CharLimit = 10
	m.inputs[fieldMessage].Placeholder = "Optional note"
	m.inputs[fieldName].Focus()

	return m
}

// Init starts the cursor blink.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input and submission results.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.focusField((m.focused + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			return m.submit()
		case "ctrl+r":
			m.resetFields()
			return m, nil
		}

		// Regular typing goes to the focused input; editing a field
		// clears its error.
		var cmd tea.Cmd
		before := m.inputs[m.focused].Value()
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		if m.inputs[m.focused].Value() != before {
			delete(m.errors, fieldKeys[m.focused])
		}
		return m, cmd

	case createResultMsg:
		return m.handleResult(msg)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// CanSubmit reports whether the current field values pass every rule and no
// submission is in flight.
func (m FormModel) CanSubmit() bool {
	return !m.submitting && validate.ContactOK(
		m.inputs[fieldName].Value(),
		m.inputs[fieldEmail].Value(),
		m.inputs[fieldPhone].Value(),
	)
}

// submit re-runs validation and, when clean, sends the create request.
func (m FormModel) submit() (FormModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	errs := validate.Contact(
		m.inputs[fieldName].Value(),
		m.inputs[fieldEmail].Value(),
		m.inputs[fieldPhone].Value(),
	)
	if len(errs) > 0 {
		m.errors = errs
		return m, nil
	}

	m.submitting = true
	m.status = ""

	req := &client.CreateContactRequest{
		Name:    m.inputs[fieldName].Value(),
		Email:   m.inputs[fieldEmail].Value(),
		Phone:   m.inputs[fieldPhone].Value(),
		Message: m.inputs[fieldMessage].Value(),
	}
	ctx, api := m.ctx, m.api
	return m, func() tea.Msg {
		contact, err := api.Create(ctx, req)
		return createResultMsg{contact: contact, err: err}
	}
}

// handleResult resolves a finished submission attempt.
func (m FormModel) handleResult(msg createResultMsg) (FormModel, tea.Cmd) {
	m.submitting = false

	if msg.err == nil {
		m.resetFields()
		m.setStatus("Contact added successfully", false)
		return m, tea.Batch(
			m.clearStatusAfter(),
			func() tea.Msg { return contactCreatedMsg{} },
		)
	}

	var apiErr *client.APIError
	switch {
	case errors.As(msg.err, &apiErr):
		if len(apiErr.Fields) > 0 {
			m.errors = apiErr.Fields
		}
		if apiErr.Message != "" {
			m.setStatus(apiErr.Message, true)
		} else {
			m.setStatus("Failed to add contact", true)
		}
	case errors.Is(msg.err, client.ErrNetwork):
		m.setStatus("Network error. Try again.", true)
	default:
		m.setStatus("Failed to add contact", true)
	}
	return m, m.clearStatusAfter()
}

func (m *FormModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
	m.statusSeq++
}

// clearStatusAfter schedules the transient status wipe.
func (m FormModel) clearStatusAfter() tea.Cmd {
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *FormModel) resetFields() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.errors = make(map[string]string)
	m.focusField(fieldName)
}

func (m *FormModel) focusField(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[i].Focus()
}

// Blur removes focus from the form while the list pane is active.
func (m *FormModel) Blur() {
	m.inputs[m.focused].Blur()
}

// Focus restores focus to the current field.
func (m *FormModel) Focus() {
	m.inputs[m.focused].Focus()
}

// View renders the form card.
func (m FormModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Add Contact"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.styles.Label.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg := m.errors[fieldKeys[i]]; msg != "" {
			b.WriteString(m.styles.FieldError.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(m.styles.Muted.Render("Saving..."))
	case m.CanSubmit():
		b.WriteString(m.styles.Help.Render("enter: save  ctrl+r: reset"))
	default:
		b.WriteString(m.styles.Muted.Render("Fill in name and a 10-digit phone"))
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Success.Render(m.status))
		}
	}

	return m.styles.Card.Render(b.String())
}
