package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/contactdesk/contactdesk/internal/client"
	"github.com/contactdesk/contactdesk/internal/model"
)

// ListModel renders the authoritative contact set through a filtered and
// sorted projection, and drives deletions.
type ListModel struct {
	api API
	ctx context.Context

	contacts []model.Contact
	loading  bool

	search  textinput.Model
	sortKey SortKey
	cursor  int

	confirmID  string
	deletingID string
	status     string

	styles Styles
}

// NewListModel creates an empty, loading contact list.
func NewListModel(ctx context.Context, apiClient API) ListModel {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search contacts..."
	search.CharLimit = 100
	search.Width = 32

	return ListModel{
		api:     apiClient,
		ctx:     ctx,
		loading: true,
		search:  search,
		sortKey: SortByName,
		styles:  DefaultStyles(),
	}
}

// SetContacts replaces the displayed contact set. Called by the app shell
// after every fetch; the list itself never owns authoritative state.
func (m *ListModel) SetContacts(contacts []model.Contact) {
	m.contacts = contacts
	m.loading = false
	m.clampCursor()
}

// SetLoading switches the loading indicator on.
func (m *ListModel) SetLoading() {
	m.loading = true
}

// capturingInput reports whether the list is consuming raw key input,
// into either the search box or a pending delete confirmation. While it
// is, shell-level shortcuts must stay out of the way.
func (m ListModel) capturingInput() bool {
	return m.search.Focused() || m.confirmID != ""
}

// visible recomputes the display projection from current state. Never
// cached: contacts, term, and sort key are the only inputs.
func (m ListModel) visible() []model.Contact {
	return Visible(m.contacts, m.search.Value(), m.sortKey)
}

// Update handles key input and deletion results.
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.String() {
			case "enter", "esc":
				m.search.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.clampCursor()
			return m, cmd
		}

		// A pending confirmation swallows everything except yes/no.
		if m.confirmID != "" {
			switch msg.String() {
			case "y", "Y":
				return m.deleteConfirmed()
			default:
				m.confirmID = ""
				return m, nil
			}
		}

		switch msg.String() {
		case "/":
			m.search.Focus()
			return m, textinput.Blink
		case "s":
			m.sortKey = nextSortKey(m.sortKey)
			m.clampCursor()
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
			return m, nil
		case "d", "delete":
			visible := m.visible()
			if m.deletingID == "" && m.cursor < len(visible) {
				m.confirmID = visible[m.cursor].ID
				m.status = ""
			}
			return m, nil
		}

	case deleteResultMsg:
		return m.handleDeleteResult(msg)
	}

	return m, nil
}

// deleteConfirmed marks the row as deleting and issues the request.
func (m ListModel) deleteConfirmed() (ListModel, tea.Cmd) {
	id := m.confirmID
	m.confirmID = ""
	m.deletingID = id

	ctx, api := m.ctx, m.api
	return m, func() tea.Msg {
		return deleteResultMsg{id: id, err: api.Delete(ctx, id)}
	}
}

// handleDeleteResult clears the deleting marker whatever the outcome, then
// either tells the app shell to refetch or surfaces the failure.
func (m ListModel) handleDeleteResult(msg deleteResultMsg) (ListModel, tea.Cmd) {
	m.deletingID = ""

	if msg.err == nil {
		return m, func() tea.Msg { return contactDeletedMsg{} }
	}

	var apiErr *client.APIError
	switch {
	case errors.As(msg.err, &apiErr) && apiErr.Message != "":
		m.status = apiErr.Message
	case errors.Is(msg.err, client.ErrNetwork):
		m.status = "Network error. Try again."
	default:
		m.status = "Failed to delete contact"
	}
	return m, nil
}

func (m *ListModel) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the list card.
func (m ListModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Contacts"))
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  sort: %s", m.sortKey)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading contacts..."))
		return m.styles.Card.Render(b.String())
	}

	if len(m.contacts) > 0 {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	visible := m.visible()
	switch {
	case len(m.contacts) == 0:
		b.WriteString("No contacts yet.\n")
		b.WriteString(m.styles.Muted.Render("Use the form to add your first contact."))
	case len(visible) == 0:
		b.WriteString("No contacts found.\n")
		b.WriteString(m.styles.Muted.Render("Try a different search term."))
	default:
		for i, c := range visible {
			b.WriteString(m.renderRow(i, c))
		}
	}

	if m.confirmID != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Danger.Render("Delete this contact? (y/n)"))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.status))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("/: search  s: sort  d: delete  j/k: move"))
	return m.styles.Card.Render(b.String())
}

func (m ListModel) renderRow(i int, c model.Contact) string {
	line := fmt.Sprintf("%-20s %-12s %s", c.Name, c.Phone, c.Email)
	if c.Message != "" {
		line += "\n" + m.styles.Muted.Render("    "+c.Message)
	}

	switch {
	case c.ID == m.deletingID:
		line += "  " + m.styles.Muted.Render("Deleting...")
	case i == m.cursor:
		line = m.styles.Selected.Render(line)
	}
	return line + "\n"
}
