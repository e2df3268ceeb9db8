package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
)

// ReadlineSource reads from an interactive terminal with line editing, tab
// completion of command names and an editing history kept in a file.
// That history is independent from the console's own history log.
type ReadlineSource struct {
	rl *readline.Instance
}

func NewReadlineSource(cfg SourceConfig) (*ReadlineSource, error) {
	if cfg.HistoryFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.HistoryFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	rl, err := readline.NewEx(newReadlineConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}

	return &ReadlineSource{rl: rl}, nil
}

func newReadlineConfig(cfg SourceConfig) *readline.Config {
	return &readline.Config{
		HistoryFile:       cfg.HistoryFile,
		HistoryLimit:      cfg.HistoryLimit,
		HistorySearchFold: true,
		AutoComplete:      newCompleter(cfg.Completions, cfg.HelpName),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
	}
}

// ReadLine returns io.EOF on Ctrl+D, and on Ctrl+C over an empty line.
// Ctrl+C over typed text throws the text away.
func (s *ReadlineSource) ReadLine(prompt string) (string, error) {
	s.rl.SetPrompt(prompt)

	line, err := s.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return "", io.EOF
			}
			return "", nil
		}
		return "", err
	}
	return line, nil
}

func (s *ReadlineSource) Close() error {
	return s.rl.Close()
}

// newCompleter completes command names; after helpName it completes them again.
func newCompleter(names []string, helpName string) readline.AutoCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		items = append(items, readline.PcItem(name))
	}

	root := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		if helpName != "" && name == helpName {
			root = append(root, readline.PcItem(name, items...))
			continue
		}
		root = append(root, readline.PcItem(name))
	}

	return readline.NewPrefixCompleter(root...)
}
