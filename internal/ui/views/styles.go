package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Placeholder lipgloss.Style
	Invalid     lipgloss.Style
	Disabled    lipgloss.Style
	Focused     lipgloss.Style
	Body        lipgloss.Style
	GroupLabel  lipgloss.Style
	Option      lipgloss.Style
	Highlight   lipgloss.Style
	Selected    lipgloss.Style
	Scroll      lipgloss.Style
	Native      lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Invalid:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Disabled:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Focused:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Body: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			PaddingLeft(1).
			PaddingRight(1),
		GroupLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Option:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Highlight:  lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("236")),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Scroll:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Native:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("141")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
	}
}
