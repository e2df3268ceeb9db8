package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/lex/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"LEX_RUNTIME_PATH" envDefault:".lex"`

	// Session
	Prompt string `env:"LEX_PROMPT" envDefault:"lex> "`
	Banner string `env:"LEX_BANNER" envDefault:"Lexicon Manager"`

	// Line source: auto, readline, stream or tea
	LineSource   string `env:"LEX_LINE_SOURCE" envDefault:"auto"`
	HistoryLimit int    `env:"LEX_HISTORY_LIMIT" envDefault:"500"`

	// Built-in commands
	RegisterHelp    bool `env:"LEX_REGISTER_HELP" envDefault:"true"`
	RegisterHistory bool `env:"LEX_REGISTER_HISTORY" envDefault:"true"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

// ParseAppConfig reads the environment and resolves the runtime path.
func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "lexicon.db")
}

func (c AppConfig) GetHistoryFilePath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
