package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type connectDoneMsg struct{}

type connectSpinnerModel struct {
	spinner spinner.Model
	label   string
	wait    tea.Cmd
	done    bool
}

func newConnectSpinnerModel(label string, wait tea.Cmd) connectSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return connectSpinnerModel{
		spinner: s,
		label:   label,
		wait:    wait,
	}
}

func (m connectSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m connectSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case connectDoneMsg:
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m connectSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runConnectSpinner animates on output until connect returns. connect always
// finishes before this returns, even when the program is cut short.
func runConnectSpinner(ctx context.Context, output io.Writer, connect func(context.Context) error) error {
	finished := make(chan struct{})
	var connectErr error
	go func() {
		defer close(finished)
		connectErr = connect(ctx)
	}()

	waitCmd := func() tea.Msg {
		<-finished
		return connectDoneMsg{}
	}

	p := tea.NewProgram(
		newConnectSpinnerModel("Connecting to server...", waitCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	_, runErr := p.Run()
	<-finished

	if connectErr != nil {
		return connectErr
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("connect spinner: %w", runErr)
	}

	return nil
}
