package command

import (
	"context"
	"strings"

	"github.com/sandevgo/lex/internal/core"
)

type ShowCommand struct {
	repo      core.LexiconRepository
	formatter *Formatter
}

func NewShowCommand(repo core.LexiconRepository, formatter *Formatter) *ShowCommand {
	return &ShowCommand{repo: repo, formatter: formatter}
}

func (c *ShowCommand) Name() string       { return "show" }
func (c *ShowCommand) Usage() string      { return "show <word>" }
func (c *ShowCommand) ArgsRequired() bool { return true }

func (c *ShowCommand) Execute(ctx context.Context, args string) (string, error) {
	word := strings.TrimSpace(args)
	if word == "" {
		return "", usageError(c)
	}

	entry, err := c.repo.Get(ctx, word)
	if err != nil {
		return "", err
	}
	return c.formatter.Entry(entry), nil
}
