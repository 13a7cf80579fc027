package cmd

import "github.com/charmbracelet/lipgloss"

type cliStyles struct {
	success lipgloss.Style
	failure lipgloss.Style
	pid     lipgloss.Style
	prompt  lipgloss.Style
	menu    lipgloss.Style
}

func newCLIStyles() cliStyles {
	return cliStyles{
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		pid:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		prompt:  lipgloss.NewStyle().Italic(true),
		menu:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
