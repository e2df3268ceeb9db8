package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/lex/internal/transport/cli"
)

type sourceChoice struct {
	kind string
	desc string
}

// LineSourceStep selects how the console reads its input
type LineSourceStep struct {
	choices []sourceChoice
	cursor  int
}

func NewLineSourceStep() Step {
	return &LineSourceStep{
		choices: []sourceChoice{
			{cli.SourceAuto, "readline on a terminal, plain input otherwise"},
			{cli.SourceReadline, "line editing, tab completion, saved history"},
			{cli.SourceTea, "inline editor with session recall"},
			{cli.SourceStream, "plain buffered input"},
		},
	}
}

func (s *LineSourceStep) Init() tea.Cmd {
	return nil
}

func (s *LineSourceStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.Config.LineSource = s.choices[s.cursor].kind
			return nil, nil
		}
	}
	return s, nil
}

func (s *LineSourceStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Select the input mode:\n\n")
	for i, choice := range s.choices {
		line := fmt.Sprintf("%-9s %s", choice.kind, choice.desc)
		if s.cursor == i {
			b.WriteString(selStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(itemStyle.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
