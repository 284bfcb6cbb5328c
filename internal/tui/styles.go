package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the terminal front end
type Styles struct {
	Badge   lipgloss.Style
	Title   lipgloss.Style
	Dim     lipgloss.Style
	Error   lipgloss.Style
	Card    lipgloss.Style
	Initial lipgloss.Style
	Name    lipgloss.Style
	Tag     lipgloss.Style
	Direct  lipgloss.Style
	Search  lipgloss.Style
	Source  lipgloss.Style
	Loading lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("153")).
			Background(lipgloss.Color("18")).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			MarginTop(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("224")).
			Background(lipgloss.Color("52")).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1).
			MarginBottom(1),
		Initial: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("27")).
			Padding(0, 1),
		Name:    lipgloss.NewStyle().Bold(true),
		Tag:     lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
		Direct:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		Search:  lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Underline(true),
		Source:  lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
		Loading: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}
