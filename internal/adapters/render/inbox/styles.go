package inbox

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	sender lipgloss.Style
	scope  lipgloss.Style
	stamp  lipgloss.Style
	body   lipgloss.Style
	empty  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		sender: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		scope:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		stamp:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		body:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2),
		empty:  lipgloss.NewStyle().Faint(true),
	}
}
