package ui

import (
	"context"

	"github.com/Cyclone1070/eraser/internal/config"
	"github.com/Cyclone1070/eraser/internal/ui/service"
	tea "github.com/charmbracelet/bubbletea"
)

// UI implements the UserInterface using Bubble Tea
type UI struct {
	program *tea.Program

	// Application -> UI channels
	confirmReq   chan confirmRequest
	confirmResp  chan bool
	statusChan   chan statusMsg
	messageChan  chan string
	progressChan chan progressMsg

	// UI -> Application
	commandChan chan Command

	// Ready signal
	readyChan chan struct{}
}

// Internal message types
type confirmRequest struct {
	prompt string
}

type statusMsg struct {
	phase   string
	message string
}

type progressMsg struct {
	current int
	total   int
}

// UIChannels holds the channels for UI communication
type UIChannels struct {
	ConfirmReq   chan confirmRequest
	ConfirmResp  chan bool
	StatusChan   chan statusMsg
	MessageChan  chan string
	ProgressChan chan progressMsg
	CommandChan  chan Command
	ReadyChan    chan struct{} // Signals when UI is ready to accept requests
}

// NewUIChannels creates a new UIChannels struct with default buffers.
// The message channel is sized to absorb a burst of per-pass progress lines
// without stalling the batch.
func NewUIChannels() *UIChannels {
	return &UIChannels{
		ConfirmReq:   make(chan confirmRequest),
		ConfirmResp:  make(chan bool),
		StatusChan:   make(chan statusMsg, 10),
		MessageChan:  make(chan string, 64),
		ProgressChan: make(chan progressMsg, 10),
		CommandChan:  make(chan Command, 10),
		ReadyChan:    make(chan struct{}),
	}
}

// NewUI creates a new Bubble Tea UI
func NewUI(cfg *config.Config, channels *UIChannels, renderer service.MarkdownRenderer, spinnerFactory SpinnerFactory) *UI {
	ui := &UI{
		confirmReq:   channels.ConfirmReq,
		confirmResp:  channels.ConfirmResp,
		statusChan:   channels.StatusChan,
		messageChan:  channels.MessageChan,
		progressChan: channels.ProgressChan,
		commandChan:  channels.CommandChan,
		readyChan:    channels.ReadyChan,
	}

	model := newBubbleTeaModel(
		ui.confirmReq,
		ui.confirmResp,
		ui.statusChan,
		ui.messageChan,
		ui.progressChan,
		ui.commandChan,
		ui.readyChan,
		renderer,
		spinnerFactory,
		cfg.UI.MaxLogLines,
	)

	ui.program = tea.NewProgram(model, tea.WithAltScreen())

	return ui
}

// Start starts the UI program
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}

// Ready returns a channel that is closed when the UI is ready to accept requests
func (u *UI) Ready() <-chan struct{} {
	return u.readyChan
}

// ReadConfirm prompts the user for a yes/no decision
func (u *UI) ReadConfirm(ctx context.Context, prompt string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case u.confirmReq <- confirmRequest{prompt: prompt}:
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case decision := <-u.confirmResp:
			return decision, nil
		}
	}
}

// WriteStatus updates the status bar
func (u *UI) WriteStatus(phase string, message string) {
	select {
	case u.statusChan <- statusMsg{phase: phase, message: message}:
	default:
		// Drop if channel is full
	}
}

// WriteMessage appends a line to the log pane. If the UI has exited or
// falls behind the buffer, the line is dropped rather than stalling the
// batch goroutine.
func (u *UI) WriteMessage(content string) {
	select {
	case u.messageChan <- content:
	default:
		// Drop if channel is full
	}
}

// SetProgress updates the progress bar
func (u *UI) SetProgress(current, total int) {
	select {
	case u.progressChan <- progressMsg{current: current, total: total}:
	default:
		// Drop if channel is full
	}
}

// ClearProgress hides the progress bar
func (u *UI) ClearProgress() {
	select {
	case u.progressChan <- progressMsg{}:
	default:
		// Drop if channel is full
	}
}

// Commands returns the command channel
func (u *UI) Commands() <-chan Command {
	return u.commandChan
}
