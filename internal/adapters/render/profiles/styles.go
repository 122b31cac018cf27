package profiles

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	order   lipgloss.Style
	profile lipgloss.Style
	detail  lipgloss.Style
	present lipgloss.Style
	missing lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		order:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		profile: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		present: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		missing: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
