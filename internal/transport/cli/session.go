package cli

import (
	"context"

	"github.com/sandevgo/lex/pkg/console"
	"github.com/sandevgo/lex/pkg/log"
)

// Session runs a console over a line source as a service.
type Session struct {
	console *console.Console
	source  Source
}

func NewSession(c *console.Console, source Source) *Session {
	return &Session{
		console: c,
		source:  source,
	}
}

func (s *Session) Start(ctx context.Context) error {
	log.FromCtx(ctx).Debug().Str("source", sourceName(s.source)).Msg("console session started")
	return s.console.Run(ctx, s.source)
}

func (s *Session) Shutdown(ctx context.Context) error {
	if s.source != nil {
		return s.source.Close()
	}
	return nil
}

func sourceName(src Source) string {
	switch src.(type) {
	case *ReadlineSource:
		return SourceReadline
	case *StreamSource:
		return SourceStream
	case *TeaSource:
		return SourceTea
	default:
		return "custom"
	}
}
