package installer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/lex/internal/config"
	"github.com/sandevgo/lex/pkg/env"
)

var ErrEnvExists = errors.New(".env file already exists")

// SaveEnvStep writes the collected configuration to the .env file
type SaveEnvStep struct{}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if err := WriteEnvFile(state.EnvPath, state.Config); err != nil {
		return s, func() tea.Msg { return errMsg(err) }
	}
	return nil, nil
}

func (s *SaveEnvStep) View(state *InstallState) string {
	return "Saving configuration...\n"
}

type nextMsg struct{}

// WriteEnvFile creates path with the settings of cfg. It never overwrites.
func WriteEnvFile(path string, cfg *config.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create runtime directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w at %s", ErrEnvExists, path)
	}

	content, err := env.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(content), 0600)
}
