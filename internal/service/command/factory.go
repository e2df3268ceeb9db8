package command

import (
	"context"

	"github.com/sandevgo/lex/internal/core"
)

func NewCommands(
	repo core.LexiconRepository,
	formatter *Formatter,
	stop context.CancelFunc,
) []Command {
	return []Command{
		NewAddCommand(repo, formatter),
		NewShowCommand(repo, formatter),
		NewRemoveCommand(repo, formatter),
		NewListCommand(repo, formatter),
		NewSearchCommand(repo, formatter),
		NewExitCommand(stop),
	}
}
