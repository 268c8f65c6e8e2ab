// Package model holds the UI state shared between the update loop and the
// view renderers.
package model

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// ConfirmRequest is a pending yes/no question blocking the erase flow.
type ConfirmRequest struct {
	Prompt string
}

// State is the complete UI state rendered by the views.
type State struct {
	Width  int
	Height int

	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model
	Progress progress.Model

	// Log pane history, capped at MaxLogLines.
	Lines       []string
	MaxLogLines int

	StatusPhase   string
	StatusMessage string

	// Batch progress; ShowProgress is false outside a run.
	ShowProgress bool
	CurrentFile  int
	TotalFiles   int

	PendingConfirm *ConfirmRequest
}
