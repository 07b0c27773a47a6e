// Package tui implements the Bubble Tea assistant session used when stdout
// is a terminal: a scrolling transcript above a single command input line.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolo/internal/command"
)

// inputHeight is the number of terminal rows reserved below the transcript.
const inputHeight = 2

// Model is the Bubble Tea model for the interactive assistant session.
type Model struct {
	dispatcher *command.Dispatcher
	input      textinput.Model
	transcript viewport.Model
	lines      []string
	farewell   string
	ready      bool
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithGreeting sets the banner shown at the top of the transcript.
func WithGreeting(greeting string) ModelOption {
	return func(m *Model) {
		m.lines = []string{greetingStyle.Render(greeting)}
	}
}

// WithPrompt sets the text shown before the input field.
func WithPrompt(prompt string) ModelOption {
	return func(m *Model) {
		m.input.Prompt = promptStyle.Render(prompt)
	}
}

// NewModel creates a Model over d with the stock assistant texts.
func NewModel(d *command.Dispatcher, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("Enter a command: ")
	ti.Focus()

	m := Model{
		dispatcher: d,
		input:      ti,
		lines:      []string{greetingStyle.Render("Welcome to the assistant bot!")},
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles terminal events and command submission.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.transcript = viewport.New(msg.Width, msg.Height-inputHeight)
			m.ready = true
		} else {
			m.transcript.Width = msg.Width
			m.transcript.Height = msg.Height - inputHeight
		}
		m.input.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.farewell = "Good bye!"
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.transcript, cmd = m.transcript.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit dispatches the current input line and appends the exchange to the
// transcript. Blank lines are dropped without dispatching.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	res := m.dispatcher.Dispatch(line)
	m.lines = append(m.lines, userStyle.Render("> "+line))
	m.lines = append(m.lines, replyStyle.Render(res.Output))
	m.refresh()

	if res.Quit {
		m.quitting = true
		m.farewell = res.Output
		return m, tea.Quit
	}
	return m, nil
}

// refresh pushes the transcript lines into the viewport, pinned to the end.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.transcript.SetContent(strings.Join(m.lines, "\n"))
	m.transcript.GotoBottom()
}

// View renders the transcript above the input line.
func (m Model) View() string {
	if m.quitting {
		return replyStyle.Render(m.farewell) + "\n"
	}
	if !m.ready {
		return ""
	}
	return m.transcript.View() + "\n" + m.input.View()
}

// Run starts the interactive session and blocks until it ends.
func Run(d *command.Dispatcher, opts ...ModelOption) error {
	_, err := tea.NewProgram(NewModel(d, opts...)).Run()
	return err
}
