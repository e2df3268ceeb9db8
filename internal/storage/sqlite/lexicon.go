package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/lex/internal/core"
	"github.com/sandevgo/lex/pkg/log"
)

var ErrNotFound = errors.New("word not found")

type LexiconRepo struct {
	db *sql.DB
}

func NewLexiconRepo(db *sql.DB) *LexiconRepo {
	return &LexiconRepo{db: db}
}

func (r *LexiconRepo) Put(ctx context.Context, word, definition string) (core.Entry, error) {
	query := `INSERT INTO words (word, definition) VALUES (?, ?)
		ON CONFLICT(word) DO UPDATE SET definition = excluded.definition, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.ExecContext(ctx, query, word, definition); err != nil {
		return core.Entry{}, fmt.Errorf("failed to save word %q: %w", word, err)
	}

	log.FromCtx(ctx).Debug().Str("word", word).Msg("word saved")
	return r.Get(ctx, word)
}

func (r *LexiconRepo) Get(ctx context.Context, word string) (core.Entry, error) {
	query := `SELECT word, definition, created_at, updated_at FROM words WHERE word = ?`

	var e core.Entry
	err := r.db.QueryRowContext(ctx, query, word).Scan(&e.Word, &e.Definition, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, word)
	}
	if err != nil {
		return core.Entry{}, fmt.Errorf("failed to get word %q: %w", word, err)
	}
	return e, nil
}

func (r *LexiconRepo) Delete(ctx context.Context, word string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE word = ?`, word)
	if err != nil {
		return fmt.Errorf("failed to delete word %q: %w", word, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, word)
	}
	return nil
}

func (r *LexiconRepo) List(ctx context.Context) ([]core.Entry, error) {
	return r.query(ctx, `SELECT word, definition, created_at, updated_at FROM words ORDER BY word COLLATE NOCASE`)
}

// Search returns words starting with prefix, case-insensitively.
func (r *LexiconRepo) Search(ctx context.Context, prefix string) ([]core.Entry, error) {
	pattern := escapeLike(prefix) + "%"
	return r.query(ctx, `SELECT word, definition, created_at, updated_at FROM words
		WHERE word LIKE ? ESCAPE '\' ORDER BY word COLLATE NOCASE`, pattern)
}

func (r *LexiconRepo) query(ctx context.Context, query string, args ...any) ([]core.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var entries []core.Entry
	for rows.Next() {
		var e core.Entry
		if err := rows.Scan(&e.Word, &e.Definition, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
