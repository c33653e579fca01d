package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#7C5CFF")
	colorMuted  = lipgloss.Color("#6B7280")
	colorError  = lipgloss.Color("#FF4D4D")
	colorGold   = lipgloss.Color("#FFD166")
)

// Styles groups the lipgloss styles of the terminal calculator.
type Styles struct {
	Title      lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Help       lipgloss.Style
	ErrorTitle lipgloss.Style
	ErrorText  lipgloss.Style
	Card       lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Label:      lipgloss.NewStyle().Bold(true).Width(labelWidth),
		Value:      lipgloss.NewStyle(),
		Help:       lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
		ErrorTitle: lipgloss.NewStyle().Bold(true).Foreground(colorError),
		ErrorText:  lipgloss.NewStyle().Foreground(colorError),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGold).
			Padding(0, 1),
	}
}

const labelWidth = 24
