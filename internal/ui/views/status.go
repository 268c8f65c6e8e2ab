package views

import (
	"fmt"

	"github.com/Cyclone1070/eraser/internal/ui/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatus renders the status bar
func RenderStatus(s model.State) string {
	var icon string
	var style lipgloss.Style

	switch s.StatusPhase {
	case "running":
		icon = s.Spinner.View()
		style = StatusRunningStyle
	case "cancelling":
		icon = s.Spinner.View()
		style = StatusErrorStyle
	case "done":
		icon = "✔"
		style = StatusDoneStyle
	case "error":
		icon = "✘"
		style = StatusErrorStyle
	default:
		style = StatusDefaultStyle
	}

	status := "Ready"
	if s.StatusMessage != "" {
		status = s.StatusMessage
		if icon != "" {
			status = fmt.Sprintf("%s %s", icon, s.StatusMessage)
		}
	}

	return style.Render(status)
}
