package inbox

import (
	"errors"
	"io"

	"github.com/bnema/fifochat/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

// drainedMsg hands the drained batch to the model once the program starts.
type drainedMsg struct {
	messages []application.IncomingMessage
}

// model shows one drained batch. It quits as soon as the batch is laid out.
type model struct {
	batch  []application.IncomingMessage
	styles styles
	shown  []application.IncomingMessage
	ready  bool
}

func (m model) Init() tea.Cmd {
	batch := m.batch
	return func() tea.Msg {
		return drainedMsg{messages: batch}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	drained, ok := msg.(drainedMsg)
	if !ok {
		return m, nil
	}

	m.shown = drained.messages
	m.ready = true
	return m, tea.Quit
}

func (m model) empty() bool {
	return len(m.shown) == 0
}

func (m model) View() string {
	if !m.ready {
		return ""
	}
	if m.empty() {
		return renderEmpty(m.styles)
	}

	return renderView(m.shown, m.styles)
}

// Render lays out drained messages through a one-shot bubbletea program.
func Render(messages []application.IncomingMessage) (string, error) {
	p := tea.NewProgram(
		model{batch: messages, styles: newStyles()},
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	done, ok := final.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return done.View(), nil
}
