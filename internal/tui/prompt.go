package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user cancels a prompt with esc or ctrl+c.
var ErrAborted = errors.New("prompt aborted")

var (
	promptLabelStyle = lipgloss.NewStyle().Bold(true)
	promptHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// LinePrompter reads one line per prompt.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt writes label and returns the next input line with surrounding
// whitespace removed. It returns io.EOF once input is exhausted.
func (p *LinePrompter) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

type inputModel struct {
	label   string
	input   textinput.Model
	done    bool
	aborted bool
	value   string
}

func newInputModel(label string) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 20
	ti.Focus()

	return inputModel{
		label: label,
		input: ti,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			m.done = true
			return m, tea.Quit

		case "enter":
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	label := strings.TrimLeft(m.label, "\n")
	if m.done {
		return promptLabelStyle.Render(label) + m.value + "\n"
	}
	return promptLabelStyle.Render(label) + m.input.View() + "\n" +
		promptHintStyle.Render("enter: confirm • esc: cancel")
}

// InputPrompter runs a single-line text input program for every prompt.
type InputPrompter struct {
	in  io.Reader
	out io.Writer
}

func NewInputPrompter(in io.Reader, out io.Writer) *InputPrompter {
	return &InputPrompter{in: in, out: out}
}

func (p *InputPrompter) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if strings.HasPrefix(label, "\n") {
		fmt.Fprintln(p.out)
	}

	m := newInputModel(label)
	prog := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	finalModel, err := prog.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}

	result := finalModel.(inputModel)
	if result.aborted {
		return "", ErrAborted
	}
	return strings.TrimSpace(result.value), nil
}
