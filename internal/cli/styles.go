package cli

import "github.com/charmbracelet/lipgloss"

const (
	okMark   = "✓"
	failMark = "❌"
	warnMark = "⚠"
	skipMark = "⊘"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	skippedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	heatStyles = map[string]lipgloss.Style{
		"empty":   lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		"level-1": lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
		"level-2": lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		"level-3": lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		"future":  lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
	}
)
