package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/contactdesk/contactdesk/internal/model"
)

// pane identifies which side of the split owns keyboard input.
type pane int

const (
	paneForm pane = iota
	paneList
)

// AppModel owns the authoritative contact set and composes the form and
// list views. Every mutation is followed by a full refetch; the children
// only ever see read-only copies.
type AppModel struct {
	api    API
	ctx    context.Context
	cancel context.CancelFunc

	form    FormModel
	list    ListModel
	focused pane

	contacts []model.Contact

	styles Styles
}

// NewAppModel wires the app shell. The derived context is cancelled on
// teardown so in-flight requests do not outlive the program.
func NewAppModel(apiClient API) AppModel {
	ctx, cancel := context.WithCancel(context.Background())
	return AppModel{
		api:    apiClient,
		ctx:    ctx,
		cancel: cancel,
		form:   NewFormModel(ctx, apiClient),
		list:   NewListModel(ctx, apiClient),
		styles: DefaultStyles(),
	}
}

// Init kicks off the first fetch.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.fetchContacts())
}

// fetchContacts loads the full contact set from the API.
func (m *AppModel) fetchContacts() tea.Cmd {
	m.list.SetLoading()
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		contacts, err := api.List(ctx)
		return contactsLoadedMsg{contacts: contacts, err: err}
	}
}

// Update routes messages between the shell and the two views.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit
		case "ctrl+l":
			m.toggleFocus()
			return m, nil
		case "q":
			// q quits only from the list pane, and only when the list is
			// not consuming raw input (search box, delete confirmation).
			if m.focused == paneList && !m.list.capturingInput() {
				m.cancel()
				return m, tea.Quit
			}
		}
		return m.routeToFocused(msg)

	case contactsLoadedMsg:
		if msg.err != nil {
			// No automatic retry: reset to empty and surface through
			// the list's empty state.
			slog.Error("fetch contacts failed", "error", msg.err)
			m.contacts = nil
		} else {
			m.contacts = msg.contacts
		}
		m.list.SetContacts(m.contacts)
		return m, nil

	case contactCreatedMsg, contactDeletedMsg:
		return m, m.fetchContacts()

	case createResultMsg, clearStatusMsg:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case deleteResultMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	// Everything else (blink ticks, resize) goes to both views.
	var formCmd, listCmd tea.Cmd
	m.form, formCmd = m.form.Update(msg)
	m.list, listCmd = m.list.Update(msg)
	return m, tea.Batch(formCmd, listCmd)
}

func (m AppModel) routeToFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focused == paneForm {
		m.form, cmd = m.form.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m *AppModel) toggleFocus() {
	if m.focused == paneForm {
		m.focused = paneList
		m.form.Blur()
	} else {
		m.focused = paneForm
		m.form.Focus()
	}
}

// View renders the two cards side by side.
func (m AppModel) View() string {
	help := m.styles.Help.Render("ctrl+l: switch pane  ctrl+c: quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Contact Management"),
		lipgloss.JoinHorizontal(lipgloss.Top, m.form.View(), "  ", m.list.View()),
		help,
	)
}
