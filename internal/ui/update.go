package ui

import (
	"strings"
	"time"

	"github.com/Cyclone1070/eraser/internal/ui/model"
	"github.com/Cyclone1070/eraser/internal/ui/service"
	"github.com/Cyclone1070/eraser/internal/ui/views"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const helpText = `# Commands

- ` + "`/add <path>`" + ` - add a file to the erase list
- ` + "`/adddir <path>`" + ` - add a folder to the erase list
- ` + "`/list`" + ` - show the erase list
- ` + "`/clear`" + ` - empty the erase list
- ` + "`/start`" + ` - start erasing (asks for confirmation)
- ` + "`/stop`" + ` - stop after the current file
- ` + "`/help`" + ` - show this help

Erasing overwrites file content in four passes and cannot be undone.`

// SpinnerFactory creates a new spinner
type SpinnerFactory func() spinner.Model

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	state model.State

	// Dependencies
	renderer service.MarkdownRenderer

	// Channels for communication with the application loop
	confirmReq   <-chan confirmRequest
	confirmResp  chan<- bool
	statusChan   <-chan statusMsg
	messageChan  <-chan string
	progressChan <-chan progressMsg

	// UI -> Application
	commandChan chan<- Command

	// Ready signal
	readyChan chan<- struct{}
}

// newBubbleTeaModel creates a new Bubble Tea model
func newBubbleTeaModel(
	confirmReq <-chan confirmRequest,
	confirmResp chan<- bool,
	statusChan <-chan statusMsg,
	messageChan <-chan string,
	progressChan <-chan progressMsg,
	commandChan chan<- Command,
	readyChan chan<- struct{},
	renderer service.MarkdownRenderer,
	spinnerFactory SpinnerFactory,
	maxLogLines int,
) BubbleTeaModel {
	ti := textinput.New()
	ti.Placeholder = "Type /help for commands..."
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinnerFactory()

	return BubbleTeaModel{
		state: model.State{
			Input:       ti,
			Viewport:    vp,
			Spinner:     sp,
			Progress:    progress.New(progress.WithDefaultGradient()),
			Lines:       []string{},
			MaxLogLines: maxLogLines,
			StatusPhase: "ready",
		},
		renderer:     renderer,
		confirmReq:   confirmReq,
		confirmResp:  confirmResp,
		statusChan:   statusChan,
		messageChan:  messageChan,
		progressChan: progressChan,
		commandChan:  commandChan,
		readyChan:    readyChan,
	}
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	return views.RenderRoot(m.state)
}

// Internal messages
type tickMsg time.Time
type confirmRequestMsg confirmRequest
type statusUpdateMsg statusMsg
type messageReceivedMsg string
type progressUpdateMsg progressMsg

// Init initializes the model
func (m BubbleTeaModel) Init() tea.Cmd {
	// Signal that UI is ready
	if m.readyChan != nil {
		close(m.readyChan)
	}

	return tea.Batch(
		textinput.Blink,
		m.state.Spinner.Tick,
		tick(),
		listenForConfirmRequests(m.confirmReq),
		listenForStatus(m.statusChan),
		listenForMessages(m.messageChan),
		listenForProgress(m.progressChan),
	)
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.state.Viewport.Width = msg.Width
		m.state.Viewport.Height = msg.Height - 6 // Reserve space for input, progress, status
		m.state.Progress.Width = msg.Width - 4

	case tickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, tea.Batch(cmd, tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	case confirmRequestMsg:
		m.state.PendingConfirm = &model.ConfirmRequest{Prompt: msg.prompt}
		return m, listenForConfirmRequests(m.confirmReq)

	case statusUpdateMsg:
		m.state.StatusPhase = msg.phase
		m.state.StatusMessage = msg.message
		return m, listenForStatus(m.statusChan)

	case messageReceivedMsg:
		m.appendLine(string(msg))
		return m, listenForMessages(m.messageChan)

	case progressUpdateMsg:
		m.state.ShowProgress = msg.total > 0
		m.state.CurrentFile = msg.current
		m.state.TotalFiles = msg.total
		return m, listenForProgress(m.progressChan)
	}

	// Update input
	var cmd tea.Cmd
	m.state.Input, cmd = m.state.Input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending confirmation blocks everything else
	if m.state.PendingConfirm != nil {
		switch msg.String() {
		case "y", "Y":
			m.confirmResp <- true
			m.state.PendingConfirm = nil
		case "n", "N", "esc":
			m.confirmResp <- false
			m.state.PendingConfirm = nil
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "enter":
		input := strings.TrimSpace(m.state.Input.Value())
		if input == "" {
			return m, nil
		}
		m.state.Input.SetValue("")

		if strings.HasPrefix(input, "/") {
			return m.handleCommand(input)
		}

		m.appendLine("Unknown input. Type /help for commands.")
	}

	return m, nil
}

// handleCommand handles slash commands
func (m BubbleTeaModel) handleCommand(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	arg := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "/add":
		if arg == "" {
			m.appendLine("Usage: /add <path>")
			return m, nil
		}
		m.commandChan <- Command{Type: CommandAddFile, Args: map[string]string{"path": arg}}
	case "/adddir":
		if arg == "" {
			m.appendLine("Usage: /adddir <path>")
			return m, nil
		}
		m.commandChan <- Command{Type: CommandAddFolder, Args: map[string]string{"path": arg}}
	case "/list":
		m.commandChan <- Command{Type: CommandListTargets}
	case "/clear":
		m.commandChan <- Command{Type: CommandClearTargets}
	case "/start":
		m.commandChan <- Command{Type: CommandStart}
	case "/stop":
		m.commandChan <- Command{Type: CommandStop}
	case "/help":
		m.appendHelp()
	default:
		m.appendLine("Unknown command. Type /help for commands.")
	}

	return m, nil
}

// appendHelp renders the help text as markdown, falling back to the raw
// text if rendering fails.
func (m *BubbleTeaModel) appendHelp() {
	width := m.state.Width - 4
	if width < 20 {
		width = 76
	}

	rendered := helpText
	if m.renderer != nil {
		if out, err := m.renderer.Render(helpText, width); err == nil {
			rendered = out
		}
	}
	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		m.appendLine(line)
	}
}

// appendLine adds a line to the log pane, trimming history to MaxLogLines.
func (m *BubbleTeaModel) appendLine(line string) {
	m.state.Lines = append(m.state.Lines, line)
	if m.state.MaxLogLines > 0 && len(m.state.Lines) > m.state.MaxLogLines {
		m.state.Lines = m.state.Lines[len(m.state.Lines)-m.state.MaxLogLines:]
	}
	m.updateViewport()
}

// updateViewport updates the viewport content
func (m *BubbleTeaModel) updateViewport() {
	m.state.Viewport.SetContent(views.FormatLogContent(m.state.Lines))
	m.state.Viewport.GotoBottom()
}

// Helper commands for listening to channels
func listenForConfirmRequests(ch <-chan confirmRequest) tea.Cmd {
	return func() tea.Msg {
		return confirmRequestMsg(<-ch)
	}
}

func listenForStatus(ch <-chan statusMsg) tea.Cmd {
	return func() tea.Msg {
		return statusUpdateMsg(<-ch)
	}
}

func listenForMessages(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		return messageReceivedMsg(<-ch)
	}
}

func listenForProgress(ch <-chan progressMsg) tea.Cmd {
	return func() tea.Msg {
		return progressUpdateMsg(<-ch)
	}
}

func tick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
