package ui

import "context"

// UserInterface defines the contract for all user interactions.
// It follows a Read/Write pattern for clarity.
//
// Context Usage:
// Blocking methods accept context.Context for cancellation support.
// If the user quits (Ctrl+C), the context will be cancelled, and
// implementations should return immediately with context.Canceled error.
type UserInterface interface {
	// Start runs the UI and blocks until it exits.
	Start() error

	// Ready returns a channel closed once the UI accepts requests.
	Ready() <-chan struct{}

	// ReadConfirm asks a yes/no question and blocks for the answer.
	ReadConfirm(ctx context.Context, prompt string) (bool, error)

	// WriteStatus displays ephemeral status updates (e.g., "Erasing...")
	WriteStatus(phase string, message string)

	// WriteMessage appends a line to the log pane.
	WriteMessage(content string)

	// SetProgress updates the batch progress bar (current of total files).
	SetProgress(current, total int)

	// ClearProgress hides the progress bar.
	ClearProgress()

	// Commands returns the stream of commands entered by the user.
	Commands() <-chan Command
}
