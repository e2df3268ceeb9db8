package main

import (
	"fmt"
	"os"

	"github.com/sandevgo/lex/internal/config"
	"github.com/sandevgo/lex/internal/service/installer"
	"github.com/sandevgo/lex/pkg/log"
	"github.com/spf13/cobra"
)

var useDefaults bool

var initCmd = &cobra.Command{
	Use:           "init",
	Short:         "Create the runtime directory and its .env file",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Setup logger
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		cfg, err := config.ParseAppConfig()
		if err != nil {
			return fmt.Errorf("failed to parse App config: %w", err)
		}

		envPath := cfg.GetEnvPath()
		if _, err := os.Stat(envPath); err == nil {
			return fmt.Errorf("%w at %s", installer.ErrEnvExists, envPath)
		}

		if useDefaults {
			if err := installer.WriteEnvFile(envPath, cfg); err != nil {
				return err
			}
		} else if _, err := installer.RunWizard(cfg); err != nil {
			return err
		}

		logger.Debug().Str("path", envPath).Msg("wrote .env file")
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized runtime directory at %s\nRun 'lex' to open the prompt.\n", cfg.GetRuntimePath())
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&useDefaults, "defaults", false, "write the default settings without asking")
	rootCmd.AddCommand(initCmd)
}
