package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/lex/pkg/log"
	"github.com/sandevgo/lex/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the interactive lexicon prompt",
	Long:  `Opens the lexicon database and reads commands until end of input, exit or Ctrl+C.`,
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	// logger setup
	var flushLog func()
	ctx, flushLog = setupLogger(ctx)
	defer flushLog()

	logger := log.FromCtx(ctx)
	logger.Debug().Msg("starting lex")

	services, err := NewServices(ctx, stop)
	if err != nil {
		return err
	}

	srv.StartServices(ctx, stop, services)

	// Blocks until the session ends or a signal arrives
	srv.ShutdownServices(ctx, services)
	logger.Debug().Msg("lex has been shut down gracefully")

	return nil
}

func init() {
	rootCmd.AddCommand(startCmd)
}
