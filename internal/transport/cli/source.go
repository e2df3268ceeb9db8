package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/sandevgo/lex/pkg/console"
)

const (
	SourceAuto     = "auto"
	SourceReadline = "readline"
	SourceStream   = "stream"
	SourceTea      = "tea"
)

var ErrUnknownSource = errors.New("unknown line source")

// Source is a console.LineSource that can be closed to unblock a pending read.
type Source interface {
	console.LineSource
	Close() error
}

type SourceConfig struct {
	In  io.Reader
	Out io.Writer

	HistoryFile  string
	HistoryLimit int
	Completions  []string
	// HelpName is the command whose argument completes to command names.
	HelpName string
}

// NewLineSource picks the line reading strategy once, at startup. "auto"
// means readline on a terminal and a plain stream otherwise.
func NewLineSource(kind string, cfg SourceConfig) (Source, error) {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	if kind == SourceAuto {
		kind = SourceStream
		if f, ok := cfg.In.(*os.File); ok && readline.IsTerminal(int(f.Fd())) {
			kind = SourceReadline
		}
	}

	switch kind {
	case SourceReadline:
		return NewReadlineSource(cfg)
	case SourceStream:
		return NewStreamSource(cfg.In, cfg.Out), nil
	case SourceTea:
		return NewTeaSource(cfg.In, cfg.Out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
}
