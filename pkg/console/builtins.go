package console

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sandevgo/lex/pkg/log"
)

const (
	DefaultHelpName    = "help"
	DefaultHistoryName = "history"

	// maxReplayDepth bounds history entries that replay other history entries.
	maxReplayDepth = 8
)

type replayDepthKey struct{}

func replayDepth(ctx context.Context) int {
	depth, _ := ctx.Value(replayDepthKey{}).(int)
	return depth
}

// NewHelpHandler prints the usage of the command named in args, or of every
// command when args is empty or names nothing registered.
func NewHelpHandler(view CommandView, out io.Writer) Handler {
	return func(ctx context.Context, args string) {
		if args != "" && view.Exists(args) {
			writeUsage(out, view, args)
			return
		}

		for _, name := range view.Names() {
			writeUsage(out, view, name)
		}
	}
}

// NewHistoryHandler lists recorded lines, or replays line n through replay
// when args is a valid 1-based index. Anything else is ignored.
func NewHistoryHandler(view HistoryView, replay Replayer, out io.Writer) Handler {
	return func(ctx context.Context, args string) {
		if args == "" {
			for _, e := range view.All() {
				fmt.Fprintf(out, "%d %s\n", e.Index, e.Line)
			}
			return
		}

		n, err := strconv.Atoi(strings.TrimSpace(args))
		if err != nil {
			return
		}

		line, ok := view.Get(n)
		if !ok {
			return
		}

		depth := replayDepth(ctx)
		if depth >= maxReplayDepth {
			log.FromCtx(ctx).Warn().Int("index", n).Int("depth", depth).Msg("history replay depth exceeded")
			return
		}

		replay.Execute(context.WithValue(ctx, replayDepthKey{}, depth+1), line)
	}
}
