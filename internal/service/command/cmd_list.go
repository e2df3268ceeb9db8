package command

import (
	"context"

	"github.com/sandevgo/lex/internal/core"
)

type ListCommand struct {
	repo      core.LexiconRepository
	formatter *Formatter
}

func NewListCommand(repo core.LexiconRepository, formatter *Formatter) *ListCommand {
	return &ListCommand{repo: repo, formatter: formatter}
}

func (c *ListCommand) Name() string       { return "list" }
func (c *ListCommand) Usage() string      { return "list" }
func (c *ListCommand) ArgsRequired() bool { return false }

// Execute ignores any arguments.
func (c *ListCommand) Execute(ctx context.Context, _ string) (string, error) {
	entries, err := c.repo.List(ctx)
	if err != nil {
		return "", err
	}
	return c.formatter.Words(entries, "The lexicon is empty."), nil
}
