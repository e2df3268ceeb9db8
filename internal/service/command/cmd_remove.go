package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/lex/internal/core"
)

type RemoveCommand struct {
	repo      core.LexiconRepository
	formatter *Formatter
}

func NewRemoveCommand(repo core.LexiconRepository, formatter *Formatter) *RemoveCommand {
	return &RemoveCommand{repo: repo, formatter: formatter}
}

func (c *RemoveCommand) Name() string       { return "remove" }
func (c *RemoveCommand) Usage() string      { return "remove <word>" }
func (c *RemoveCommand) ArgsRequired() bool { return true }

func (c *RemoveCommand) Execute(ctx context.Context, args string) (string, error) {
	word := strings.TrimSpace(args)
	if word == "" {
		return "", usageError(c)
	}

	if err := c.repo.Delete(ctx, word); err != nil {
		return "", err
	}
	return c.formatter.Success(fmt.Sprintf("Removed %s", word)), nil
}
