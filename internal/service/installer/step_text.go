package installer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextStep collects one free text setting, prefilled with its current value.
// An empty answer is saved as the setting's envDefault: the env parser reads
// an empty variable as unset, so a blank value cannot be stored.
type TextStep struct {
	title string
	get   func(*InstallState) string
	set   func(*InstallState, string)

	input   textinput.Model
	started bool
}

func NewPromptStep() Step {
	return &TextStep{
		title: "Prompt",
		get:   func(s *InstallState) string { return s.Config.Prompt },
		set:   func(s *InstallState, v string) { s.Config.Prompt = v },
	}
}

func NewBannerStep() Step {
	return &TextStep{
		title: "Banner",
		get:   func(s *InstallState) string { return s.Config.Banner },
		set:   func(s *InstallState, v string) { s.Config.Banner = v },
	}
}

func (s *TextStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *TextStep) start(state *InstallState) {
	s.input = textinput.New()
	s.input.CharLimit = 120
	s.input.Width = 40
	s.input.SetValue(s.get(state))
	s.input.Focus()
	s.started = true
}

func (s *TextStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if !s.started {
		s.start(state)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		s.set(state, s.input.Value())
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TextStep) View(state *InstallState) string {
	if !s.started {
		s.start(state)
	}
	return fmt.Sprintf("%s:\n\n%s\n\n(press enter to confirm, leave empty for the default)\n", s.title, s.input.View())
}
