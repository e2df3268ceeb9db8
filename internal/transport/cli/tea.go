package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TeaSource reads each line through a small Bubble Tea program with a text
// input. Up and Down walk back through lines entered in this session.
type TeaSource struct {
	in     io.Reader
	out    io.Writer
	recall []string
}

// NewTeaSource uses the terminal when in or out are nil.
func NewTeaSource(in io.Reader, out io.Writer) *TeaSource {
	return &TeaSource{in: in, out: out}
}

func (s *TeaSource) ReadLine(prompt string) (string, error) {
	opts := make([]tea.ProgramOption, 0, 2)
	if s.in != nil {
		opts = append(opts, tea.WithInput(s.in))
	}
	if s.out != nil {
		opts = append(opts, tea.WithOutput(s.out))
	}

	final, err := tea.NewProgram(newLineModel(prompt, s.recall), opts...).Run()
	if err != nil {
		return "", fmt.Errorf("line editor failed: %w", err)
	}

	m, ok := final.(lineModel)
	if !ok {
		return "", fmt.Errorf("unexpected line editor model %T", final)
	}
	if m.eof {
		return "", io.EOF
	}

	line := m.input.Value()
	if line != "" {
		s.recall = append(s.recall, line)
	}
	return line, nil
}

func (s *TeaSource) Close() error {
	return nil
}

type lineModel struct {
	input  textinput.Model
	recall []string
	pos    int
	done   bool
	eof    bool
}

func newLineModel(prompt string, recall []string) lineModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Focus()

	return lineModel{
		input:  ti,
		recall: recall,
		pos:    len(recall),
	}
}

func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.eof = true
			return m, tea.Quit
		}

	case tea.KeyCtrlC, tea.KeyEsc:
		if m.input.Value() == "" {
			m.eof = true
		} else {
			m.input.SetValue("")
			m.done = true
		}
		return m, tea.Quit

	case tea.KeyUp:
		if m.pos > 0 {
			m.pos--
			m.input.SetValue(m.recall[m.pos])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.pos < len(m.recall)-1 {
			m.pos++
			m.input.SetValue(m.recall[m.pos])
			m.input.CursorEnd()
		} else {
			m.pos = len(m.recall)
			m.input.SetValue("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lineModel) View() string {
	if m.done || m.eof {
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}
