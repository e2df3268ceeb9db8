package command

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sandevgo/lex/pkg/console"
	"github.com/sandevgo/lex/pkg/log"
)

// Command is a lexicon operation exposed on the console.
type Command interface {
	Name() string
	Usage() string
	ArgsRequired() bool
	Execute(ctx context.Context, args string) (string, error)
}

// Register adds cmds to c. Names already taken on the console are skipped.
func Register(ctx context.Context, c *console.Console, cmds []Command, formatter *Formatter) {
	logger := log.FromCtx(ctx)
	for _, cmd := range cmds {
		if !c.Register(cmd.Name(), cmd.ArgsRequired(), handler(cmd, c.Out(), formatter)) {
			logger.Warn().Str("command", cmd.Name()).Msg("command name already registered, skipping")
			continue
		}
		c.SetUsage(cmd.Name(), cmd.Usage())
	}
}

func handler(cmd Command, out io.Writer, formatter *Formatter) console.Handler {
	return func(ctx context.Context, args string) {
		result, err := cmd.Execute(ctx, args)
		if err != nil {
			log.FromCtx(ctx).Debug().Err(err).Str("command", cmd.Name()).Msg("command failed")
			result = formatter.Error(err)
		}
		if result == "" {
			return
		}
		if !strings.HasSuffix(result, "\n") {
			result += "\n"
		}
		fmt.Fprint(out, result)
	}
}

// usageError reports a malformed argument list for cmd.
func usageError(cmd Command) error {
	return fmt.Errorf("usage: %s", cmd.Usage())
}
