package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/lex/internal/core"
)

type SearchCommand struct {
	repo      core.LexiconRepository
	formatter *Formatter
}

func NewSearchCommand(repo core.LexiconRepository, formatter *Formatter) *SearchCommand {
	return &SearchCommand{repo: repo, formatter: formatter}
}

func (c *SearchCommand) Name() string       { return "search" }
func (c *SearchCommand) Usage() string      { return "search <prefix>" }
func (c *SearchCommand) ArgsRequired() bool { return true }

func (c *SearchCommand) Execute(ctx context.Context, args string) (string, error) {
	prefix := strings.TrimSpace(args)
	if prefix == "" {
		return "", usageError(c)
	}

	entries, err := c.repo.Search(ctx, prefix)
	if err != nil {
		return "", err
	}
	return c.formatter.Words(entries, fmt.Sprintf("No words start with %q.", prefix)), nil
}
