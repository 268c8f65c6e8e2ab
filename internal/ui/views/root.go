package views

import (
	"github.com/Cyclone1070/eraser/internal/ui/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s model.State) string {
	sections := []string{
		RenderLog(s),
	}

	if s.ShowProgress {
		sections = append(sections, RenderProgress(s))
	}

	sections = append(sections,
		RenderInput(s),
		RenderStatus(s),
	)

	// A pending confirmation overlays everything
	if s.PendingConfirm != nil {
		return lipgloss.Place(
			s.Width,
			s.Height,
			lipgloss.Center,
			lipgloss.Center,
			RenderConfirm(s),
			lipgloss.WithWhitespaceChars(""),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
