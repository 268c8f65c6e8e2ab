package views

import "github.com/charmbracelet/lipgloss"

// Shared palette
var (
	ColorPrimary = lipgloss.Color("205")
	ColorDanger  = lipgloss.Color("196")
	ColorOK      = lipgloss.Color("42")
	ColorDim     = lipgloss.Color("241")
)

var (
	InputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1)

	StatusDefaultStyle = lipgloss.NewStyle().
				Foreground(ColorDim)

	StatusRunningStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	StatusDoneStyle = lipgloss.NewStyle().
			Foreground(ColorOK)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorDanger)

	ConfirmBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(ColorDanger).
			Padding(1, 2)

	ProgressLabelStyle = lipgloss.NewStyle().
				Foreground(ColorDim).
				PaddingLeft(1)
)
