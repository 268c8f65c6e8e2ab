package views

import (
	"github.com/Cyclone1070/eraser/internal/ui/model"
)

// RenderInput renders the input bar
func RenderInput(s model.State) string {
	return InputStyle.Render(s.Input.View())
}
