package installer

import "github.com/sandevgo/lex/internal/config"

type InstallState struct {
	Config  *config.AppConfig
	EnvPath string
}

func NewInstallState(cfg *config.AppConfig) *InstallState {
	return &InstallState{
		Config:  cfg,
		EnvPath: cfg.GetEnvPath(),
	}
}
