// Package ui implements the interactive terminal client: a contact form and
// a searchable, sortable contact list backed by the Contacts API.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by the form and list views.
type Styles struct {
	Title      lipgloss.Style
	Card       lipgloss.Style
	Label      lipgloss.Style
	FieldError lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Danger     lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2),
		Label:      lipgloss.NewStyle().Bold(true),
		FieldError: lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935")),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Danger:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E53935")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
