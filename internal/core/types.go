package core

import "time"

const (
	LexName       = "lex"
	LexVersion    = "0.1.0"
	RepositoryURL = "https://github.com/sandevgo/lex"
)

// Entry is one word of the lexicon. Definition is Markdown.
type Entry struct {
	Word       string
	Definition string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
