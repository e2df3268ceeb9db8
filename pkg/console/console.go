// Package console is a small line-oriented command shell: register named
// commands, feed it lines, and it dispatches them to their handlers.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sandevgo/lex/pkg/log"
)

const (
	DefaultPrompt = "console> "
	DefaultBanner = "Console App"
)

// LineSource supplies one line per call, without its terminator.
// It returns io.EOF when no more input is available.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

type Console struct {
	prompt string
	banner string

	out       io.Writer
	highlight func(string) string

	helpName    string
	historyName string

	registry   *Registry
	history    *History
	dispatcher *Dispatcher
}

func New(opts ...Option) *Console {
	c := &Console{
		prompt:      DefaultPrompt,
		banner:      DefaultBanner,
		out:         os.Stdout,
		helpName:    DefaultHelpName,
		historyName: DefaultHistoryName,
		registry:    NewRegistry(),
		history:     NewHistory(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.dispatcher = NewDispatcher(c.registry, c.out, c.highlight)
	c.registerBuiltins()

	return c
}

func (c *Console) registerBuiltins() {
	if c.helpName != "" {
		c.registry.Register(c.helpName, false, NewHelpHandler(c.registry, c.out))
		c.registry.SetUsage(c.helpName, c.helpName+" [command]")
	}

	if c.historyName != "" {
		c.registry.Register(c.historyName, false, NewHistoryHandler(c.history, c.dispatcher, c.out))
		c.registry.SetUsage(c.historyName, c.historyName+" [n]")
	}
}

func (c *Console) Prompt() string       { return c.prompt }
func (c *Console) SetPrompt(p string)   { c.prompt = p }
func (c *Console) Banner() string       { return c.banner }
func (c *Console) SetBanner(b string)   { c.banner = b }
func (c *Console) Out() io.Writer       { return c.out }
func (c *Console) Commands() *Registry  { return c.registry }
func (c *Console) History() HistoryView { return c.history }

// HelpName is the name help is registered under, or "" when it is disabled.
func (c *Console) HelpName() string {
	if c.helpName == "" || !c.registry.Exists(c.helpName) {
		return ""
	}
	return c.helpName
}

func (c *Console) Register(name string, argsRequired bool, h Handler) bool {
	return c.registry.Register(name, argsRequired, h)
}

func (c *Console) SetUsage(name, usage string) {
	c.registry.SetUsage(name, usage)
}

func (c *Console) Usage(name string) string {
	return c.registry.Usage(name)
}

func (c *Console) IsCommand(name string) bool {
	return c.registry.Exists(name)
}

// ExecuteCommand dispatches an already split command. It does not touch history.
func (c *Console) ExecuteCommand(ctx context.Context, name, args string) Outcome {
	return c.dispatcher.Dispatch(ctx, name, args)
}

// Execute splits and dispatches line. It does not touch history.
func (c *Console) Execute(ctx context.Context, line string) Outcome {
	return c.dispatcher.Execute(ctx, line)
}

// Run reads lines from src until it reports io.EOF or ctx is done.
// Every non-blank line is recorded in history and then dispatched.
func (c *Console) Run(ctx context.Context, src LineSource) error {
	logger := log.FromCtx(ctx)

	if c.banner != "" {
		fmt.Fprintln(c.out, c.banner)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("console stopped")
			return nil
		default:
		}

		line, err := src.ReadLine(c.prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug().Msg("end of input")
				return nil
			}
			return fmt.Errorf("failed to read line: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		c.history.Record(line)
		outcome := c.dispatcher.Execute(ctx, line)
		logger.Debug().Str("line", line).Stringer("outcome", outcome).Msg("dispatched")
	}
}
