package command

import "context"

// ExitCommand cancels the session. The console stops before its next read.
type ExitCommand struct {
	stop context.CancelFunc
}

func NewExitCommand(stop context.CancelFunc) *ExitCommand {
	return &ExitCommand{stop: stop}
}

func (c *ExitCommand) Name() string       { return "exit" }
func (c *ExitCommand) Usage() string      { return "exit" }
func (c *ExitCommand) ArgsRequired() bool { return false }

func (c *ExitCommand) Execute(context.Context, string) (string, error) {
	c.stop()
	return "", nil
}
