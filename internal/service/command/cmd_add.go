package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/lex/internal/core"
	"github.com/sandevgo/lex/pkg/console"
)

type AddCommand struct {
	repo      core.LexiconRepository
	formatter *Formatter
}

func NewAddCommand(repo core.LexiconRepository, formatter *Formatter) *AddCommand {
	return &AddCommand{repo: repo, formatter: formatter}
}

func (c *AddCommand) Name() string       { return "add" }
func (c *AddCommand) Usage() string      { return "add <word> <definition>" }
func (c *AddCommand) ArgsRequired() bool { return true }

func (c *AddCommand) Execute(ctx context.Context, args string) (string, error) {
	word, definition := console.Split(args)
	if word == "" || definition == "" {
		return "", usageError(c)
	}

	entry, err := c.repo.Put(ctx, word, definition)
	if err != nil {
		return "", err
	}

	return c.formatter.Success(fmt.Sprintf("Saved %s", entry.Word)), nil
}
