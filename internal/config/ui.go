package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/lex/pkg/log"
)

type UIConfig struct {
	NoColor bool `env:"LEX_NO_COLOR" envDefault:"false"`
}

func NewUIConfig(ctx context.Context) *UIConfig {
	c := &UIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse UI config")
	}
	return c
}
