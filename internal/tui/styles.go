package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	strongFg  = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#FFFFFF"}
	borderCol = lipgloss.Color("#243141")
	errorFg   = lipgloss.Color("#F87171")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle   = lipgloss.NewStyle().Foreground(errorFg)

	navStyle       = lipgloss.NewStyle().Foreground(baseDimFg)
	navActiveStyle = lipgloss.NewStyle().Foreground(strongFg).Underline(true)

	pageTitleStyle = lipgloss.NewStyle().Foreground(strongFg).Bold(true)
	headingStyle   = lipgloss.NewStyle().Foreground(strongFg).Bold(true)
	cardStyle      = boxStyle
	cardFocusStyle = boxStyle.BorderForeground(accentFg)
	cardTitleStyle = lipgloss.NewStyle().Bold(true)

	sidebarItemStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	sidebarActiveStyle = lipgloss.NewStyle().Foreground(strongFg).Bold(true)
	resultSelStyle     = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
)
