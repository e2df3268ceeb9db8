package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Outcome reports what Dispatch did with a line.
type Outcome int

const (
	Invoked Outcome = iota
	UsageShown
	Unrecognized
)

func (o Outcome) String() string {
	switch o {
	case Invoked:
		return "invoked"
	case UsageShown:
		return "usage-shown"
	case Unrecognized:
		return "unrecognized"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Replayer executes a full line as if it had been typed.
type Replayer interface {
	Execute(ctx context.Context, line string) Outcome
}

type Dispatcher struct {
	registry  *Registry
	out       io.Writer
	highlight func(string) string
}

func NewDispatcher(registry *Registry, out io.Writer, highlight func(string) string) *Dispatcher {
	if highlight == nil {
		highlight = func(s string) string { return s }
	}
	return &Dispatcher{
		registry:  registry,
		out:       out,
		highlight: highlight,
	}
}

// Split cuts line at its first run of whitespace. The run itself is dropped,
// everything after it is returned untouched as args.
func Split(line string) (name, args string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeftFunc(line[i:], unicode.IsSpace)
}

func (d *Dispatcher) Split(line string) (string, string) {
	return Split(line)
}

func (d *Dispatcher) Dispatch(ctx context.Context, name, args string) Outcome {
	cmd, ok := d.registry.lookup(name)
	if !ok {
		fmt.Fprintf(d.out, "Command '%s' not recognized\n", d.highlight(name))
		return Unrecognized
	}

	if cmd.argsRequired && args == "" {
		writeUsage(d.out, d.registry, name)
		return UsageShown
	}

	cmd.handler(ctx, args)
	return Invoked
}

func (d *Dispatcher) Execute(ctx context.Context, line string) Outcome {
	name, args := d.Split(line)
	return d.Dispatch(ctx, name, args)
}

// writeUsage prints the usage of name, or the bare name when no usage was set.
func writeUsage(w io.Writer, view CommandView, name string) {
	usage := view.Usage(name)
	if usage == "" {
		usage = name
	}
	fmt.Fprintf(w, "Usage: %s\n", usage)
}
