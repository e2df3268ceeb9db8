package installer

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sandevgo/lex/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState(t *testing.T) *InstallState {
	t.Helper()
	dir := t.TempDir()

	return &InstallState{
		Config: &config.AppConfig{
			RuntimePath:     dir,
			Prompt:          "lex> ",
			Banner:          "Lexicon Manager",
			LineSource:      "auto",
			HistoryLimit:    500,
			RegisterHelp:    true,
			RegisterHistory: true,
		},
		EnvPath: filepath.Join(dir, ".env"),
	}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	res, ok := next.(model)
	require.True(t, ok)
	return res, cmd
}

func TestWizard_Flow(t *testing.T) {
	state := testState(t)
	m := initialModel(state)

	// line source: move to "readline"
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "readline", state.Config.LineSource)
	assert.Equal(t, 1, m.currentStep)

	// prompt: replace the prefilled value
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("words> ")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "words> ", state.Config.Prompt)

	// banner: keep default
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Lexicon Manager", state.Config.Banner)
	require.NotNil(t, cmd)

	// save step runs on its init message
	m, _ = update(t, m, cmd())
	assert.Equal(t, len(m.steps), m.currentStep)

	parsed, err := godotenv.Read(state.EnvPath)
	require.NoError(t, err)
	assert.Equal(t, "readline", parsed["LEX_LINE_SOURCE"])
	assert.Equal(t, "words> ", parsed["LEX_PROMPT"])
	assert.Equal(t, "true", parsed["LEX_REGISTER_HELP"])
}

func TestWizard_ClearedBannerFallsBackToDefault(t *testing.T) {
	state := testState(t)
	state.Config.Banner = "My Words"
	m := initialModel(state)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "leave empty for the default")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, state.Config.Banner)
	require.NotNil(t, cmd)

	_, _ = update(t, m, cmd())

	parsed, err := godotenv.Read(state.EnvPath)
	require.NoError(t, err)
	assert.Equal(t, "Lexicon Manager", parsed["LEX_BANNER"])

	// an empty variable reads back as the default anyway
	t.Setenv("LEX_BANNER", "")
	cfg, err := config.ParseAppConfig()
	require.NoError(t, err)
	assert.Equal(t, "Lexicon Manager", cfg.Banner)
}

func TestWizard_CtrlCQuits(t *testing.T) {
	m, cmd := update(t, initialModel(testState(t)), tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "Setup cancelled.\n", m.View())
}

func TestWriteEnvFile_RefusesOverwrite(t *testing.T) {
	state := testState(t)
	require.NoError(t, os.WriteFile(state.EnvPath, []byte("LEX_PROMPT=x\n"), 0600))

	err := WriteEnvFile(state.EnvPath, state.Config)
	assert.ErrorIs(t, err, ErrEnvExists)

	data, err := os.ReadFile(state.EnvPath)
	require.NoError(t, err)
	assert.Equal(t, "LEX_PROMPT=x\n", string(data))
}
