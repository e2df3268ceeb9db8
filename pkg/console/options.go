package console

import "io"

type Option func(*Console)

func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
	}
}

func WithPrompt(prompt string) Option {
	return func(c *Console) {
		c.prompt = prompt
	}
}

func WithBanner(banner string) Option {
	return func(c *Console) {
		c.banner = banner
	}
}

// WithHighlighter decorates command names in the not-recognized notice.
func WithHighlighter(fn func(string) string) Option {
	return func(c *Console) {
		c.highlight = fn
	}
}

func WithoutHelp() Option {
	return func(c *Console) {
		c.helpName = ""
	}
}

func WithoutHistory() Option {
	return func(c *Console) {
		c.historyName = ""
	}
}

// WithHelpName registers the help built-in under name. An empty name disables it.
func WithHelpName(name string) Option {
	return func(c *Console) {
		c.helpName = name
	}
}

// WithHistoryName registers the history built-in under name. An empty name disables it.
func WithHistoryName(name string) Option {
	return func(c *Console) {
		c.historyName = name
	}
}
