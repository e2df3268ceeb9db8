package sqlite

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverPragmas(t *testing.T) {
	db, err := sql.Open(DriverName, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Ping())

	var fk int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)

	var timeout int
	require.NoError(t, db.QueryRow("PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := sql.Open(DriverName, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE words (id INTEGER PRIMARY KEY, word TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE tags (word_id INTEGER REFERENCES words(id), tag TEXT)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO tags (word_id, tag) VALUES (42, 'noun')`)
	assert.Error(t, err)
}
