package views

import (
	"strings"
	"testing"

	"github.com/Cyclone1070/eraser/internal/ui/model"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/assert"
)

func testState() model.State {
	return model.State{
		Width:    80,
		Height:   24,
		Input:    textinput.New(),
		Viewport: viewport.New(80, 20),
		Spinner:  spinner.New(),
		Progress: progress.New(),
	}
}

func TestRenderLog_EmptyShowsHint(t *testing.T) {
	t.Parallel()

	out := RenderLog(testState())
	assert.Contains(t, out, "/help")
}

func TestFormatLogContent_JoinsLines(t *testing.T) {
	t.Parallel()

	out := FormatLogContent([]string{"one", "two"})
	assert.Equal(t, "one\ntwo", out)
}

func TestRenderStatus_DefaultReady(t *testing.T) {
	t.Parallel()

	out := RenderStatus(testState())
	assert.Contains(t, out, "Ready")
}

func TestRenderStatus_DonePhaseShowsCheckmark(t *testing.T) {
	t.Parallel()

	s := testState()
	s.StatusPhase = "done"
	s.StatusMessage = "Erase complete"

	out := RenderStatus(s)
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Erase complete")
}

func TestRenderProgress_ShowsCounter(t *testing.T) {
	t.Parallel()

	s := testState()
	s.ShowProgress = true
	s.CurrentFile = 2
	s.TotalFiles = 5

	out := RenderProgress(s)
	assert.Contains(t, out, "2/5")
}

func TestRenderProgress_ZeroTotalRendersNothing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RenderProgress(testState()))
}

func TestRenderConfirm_ShowsPromptAndKeys(t *testing.T) {
	t.Parallel()

	s := testState()
	s.PendingConfirm = &model.ConfirmRequest{Prompt: "Erase 3 file(s)?"}

	out := RenderConfirm(s)
	assert.Contains(t, out, "Erase 3 file(s)?")
	assert.Contains(t, out, "y: Confirm")
}

func TestRenderRoot_ConfirmOverlayReplacesLayout(t *testing.T) {
	t.Parallel()

	s := testState()
	s.PendingConfirm = &model.ConfirmRequest{Prompt: "Sure?"}

	out := RenderRoot(s)
	assert.Contains(t, out, "Sure?")
	assert.False(t, strings.Contains(out, "Ready"), "status bar hidden behind overlay")
}
