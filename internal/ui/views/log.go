package views

import (
	"strings"

	"github.com/Cyclone1070/eraser/internal/ui/model"
)

// RenderLog renders the log pane
func RenderLog(s model.State) string {
	if len(s.Lines) == 0 {
		return "No activity yet. Type /help for commands."
	}
	return s.Viewport.View()
}

// FormatLogContent formats log lines for the viewport
func FormatLogContent(lines []string) string {
	return strings.Join(lines, "\n")
}
