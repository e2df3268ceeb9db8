package core

import "context"

type LexiconRepository interface {
	// Put creates the entry or replaces the definition of an existing word.
	Put(ctx context.Context, word, definition string) (Entry, error)
	Get(ctx context.Context, word string) (Entry, error)
	Delete(ctx context.Context, word string) error
	List(ctx context.Context) ([]Entry, error)
	Search(ctx context.Context, prefix string) ([]Entry, error)
}
