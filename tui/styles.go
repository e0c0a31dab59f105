package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1f77b4"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2ca02c"))

	buttonStyle = lipgloss.NewStyle().
			Width(buttonWidth).
			Padding(0, 1)

	focusedStyle = buttonStyle.
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("#1f77b4"))

	selectedStyle = buttonStyle.
			Bold(true).
			Foreground(lipgloss.Color("#ff7f0e"))

	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d6a500"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d62728"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	linkStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#17becf"))
)

// buttonWidth fits a full display label plus padding and brackets.
const buttonWidth = 46
