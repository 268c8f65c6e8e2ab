package views

import (
	"strings"

	"github.com/Cyclone1070/eraser/internal/ui/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderConfirm renders the confirmation popup
func RenderConfirm(s model.State) string {
	if s.PendingConfirm == nil {
		return ""
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(ColorDanger).Render("Confirm"))
	lines = append(lines, "")
	lines = append(lines, s.PendingConfirm.Prompt)
	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Faint(true).Render("y: Confirm  n/Esc: Cancel"))

	return ConfirmBoxStyle.Render(strings.Join(lines, "\n"))
}
