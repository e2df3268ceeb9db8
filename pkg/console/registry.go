package console

import "context"

// Handler is invoked with everything after the command name.
type Handler func(ctx context.Context, args string)

type command struct {
	name         string
	handler      Handler
	argsRequired bool
	usage        string
}

// CommandView is the read-only side of a Registry.
type CommandView interface {
	Exists(name string) bool
	Usage(name string) string
	Names() []string
}

// Registry keeps commands in registration order.
// It is not safe for concurrent use.
type Registry struct {
	commands map[string]*command
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*command),
	}
}

// Register adds a command. It returns false and leaves the registry untouched
// when name is already taken.
func (r *Registry) Register(name string, argsRequired bool, h Handler) bool {
	if _, exists := r.commands[name]; exists {
		return false
	}

	r.commands[name] = &command{
		name:         name,
		handler:      h,
		argsRequired: argsRequired,
	}
	r.order = append(r.order, name)
	return true
}

func (r *Registry) SetUsage(name, text string) {
	if cmd, ok := r.commands[name]; ok {
		cmd.usage = text
	}
}

func (r *Registry) Usage(name string) string {
	if cmd, ok := r.commands[name]; ok {
		return cmd.usage
	}
	return ""
}

func (r *Registry) Exists(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// Names returns a copy of the command names in registration order.
func (r *Registry) Names() []string {
	res := make([]string, len(r.order))
	copy(res, r.order)
	return res
}

func (r *Registry) lookup(name string) (*command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}
