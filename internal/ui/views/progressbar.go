package views

import (
	"fmt"

	"github.com/Cyclone1070/eraser/internal/ui/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderProgress renders the batch progress bar with a files counter
func RenderProgress(s model.State) string {
	if s.TotalFiles == 0 {
		return ""
	}

	percent := float64(s.CurrentFile) / float64(s.TotalFiles)
	label := ProgressLabelStyle.Render(fmt.Sprintf("%d/%d", s.CurrentFile, s.TotalFiles))

	return lipgloss.JoinHorizontal(lipgloss.Center, s.Progress.ViewAs(percent), label)
}
