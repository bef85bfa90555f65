package cmd

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/bnema/meshsos/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type countdownDoneMsg struct {
	message domain.SOSMessage
	err     error
}

type countdownSpinnerModel struct {
	spinner   spinner.Model
	remaining func() time.Duration
	wait      tea.Cmd
	message   domain.SOSMessage
	err       error
	done      bool
}

func newCountdownSpinnerModel(remaining func() time.Duration, wait tea.Cmd) countdownSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("196"))),
	)

	return countdownSpinnerModel{
		spinner:   s,
		remaining: remaining,
		wait:      wait,
	}
}

func (m countdownSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m countdownSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case countdownDoneMsg:
		m.done = true
		m.message = msg.message
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m countdownSpinnerModel) View() string {
	if m.done {
		return ""
	}

	seconds := int(math.Ceil(m.remaining().Seconds()))
	return fmt.Sprintf("%s Fall detected. Sending SOS in %ds (ctrl+c to cancel)", m.spinner.View(), seconds)
}

// runCountdownSpinner shows the confirmation countdown until wait reports the
// outcome of the automatic alert.
func runCountdownSpinner(ctx context.Context, output io.Writer, remaining func() time.Duration, wait func(context.Context) (domain.SOSMessage, error)) (domain.SOSMessage, error) {
	waitCmd := func() tea.Msg {
		message, err := wait(ctx)
		return countdownDoneMsg{message: message, err: err}
	}

	p := tea.NewProgram(
		newCountdownSpinnerModel(remaining, waitCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.SOSMessage{}, err
	}

	result, ok := finalModel.(countdownSpinnerModel)
	if !ok {
		return domain.SOSMessage{}, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.message, result.err
}
