package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/lex/internal/config"
	"github.com/sandevgo/lex/internal/service/command"
	"github.com/sandevgo/lex/internal/service/ui"
	"github.com/sandevgo/lex/internal/storage/sqlite"
	"github.com/sandevgo/lex/internal/transport/cli"
	"github.com/sandevgo/lex/pkg/console"
	"github.com/sandevgo/lex/pkg/log"
	"github.com/sandevgo/lex/pkg/srv"
)

// NewServices wires storage, the console and its line source. stop ends the
// session; the exit command calls it.
func NewServices(ctx context.Context, stop context.CancelFunc) ([]srv.Service, error) {
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, fmt.Errorf("failed to init env: %w", err)
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	uiCfg := config.NewUIConfig(ctx)
	painter := ui.NewPainter(uiCfg.NoColor)

	// 2. Storage
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. Console
	c := console.New(consoleOptions(appCfg, painter)...)
	formatter := command.NewFormatter(painter)
	command.Register(ctx, c, command.NewCommands(sqlite.NewLexiconRepo(db), formatter, stop), formatter)

	// 4. Line source
	source, err := cli.NewLineSource(appCfg.LineSource, cli.SourceConfig{
		HistoryFile:  appCfg.GetHistoryFilePath(),
		HistoryLimit: appCfg.HistoryLimit,
		Completions:  c.Commands().Names(),
		HelpName:     c.HelpName(),
	})
	if err != nil {
		return nil, err
	}
	services = append(services, cli.NewSession(c, source))

	return services, nil
}

func consoleOptions(cfg *config.AppConfig, painter *ui.Painter) []console.Option {
	banner := cfg.Banner
	if banner != "" {
		banner = painter.Title(banner)
	}

	opts := []console.Option{
		console.WithPrompt(cfg.Prompt),
		console.WithBanner(banner),
		console.WithHighlighter(painter.Command),
	}
	if !cfg.RegisterHelp {
		opts = append(opts, console.WithoutHelp())
	}
	if !cfg.RegisterHistory {
		opts = append(opts, console.WithoutHistory())
	}
	return opts
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
