package cli

import "github.com/charmbracelet/lipgloss"

const bannerText = "Calculator (PEMDAS)"

// Styles is the set of lipgloss styles used by the interactive prompt.
type Styles struct {
	Banner lipgloss.Style
	Prompt lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}

func newStyles() *Styles {
	return &Styles{
		Banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Border(lipgloss.DoubleBorder()).Padding(0, 3),
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Result: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:  lipgloss.NewStyle().Faint(true),
	}
}
