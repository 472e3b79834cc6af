// Package archive persists found words in a local SQLite database.
package archive

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/hnordt/wordfeel/internal/word"
)

const schema = `
CREATE TABLE IF NOT EXISTS words (
	id            TEXT PRIMARY KEY,
	word          TEXT NOT NULL,
	pronunciation TEXT NOT NULL DEFAULT '',
	origin        TEXT NOT NULL DEFAULT '',
	definition    TEXT NOT NULL,
	query         TEXT NOT NULL DEFAULT '',
	source        TEXT NOT NULL DEFAULT '',
	created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_words_word ON words(word COLLATE NOCASE);
`

// Entry is an archived word with its storage identity.
type Entry struct {
	ID string
	word.Result
}

// Store is an append-only archive of found words. Deduplication is the
// caller's decision; the store itself accepts repeats.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the archive database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Save appends a result and returns its assigned id.
func (s *Store) Save(res word.Result) (string, error) {
	id := uuid.NewString()

	_, err := s.db.Exec(`
		INSERT INTO words (id, word, pronunciation, origin, definition, query, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, res.Word, res.Pronunciation, res.Origin, res.Definition,
		res.Query, string(res.Source), res.Timestamp.Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("saving word: %w", err)
	}

	return id, nil
}

// List returns all archived words, newest first.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, word, pronunciation, origin, definition, query, source, created_at
		FROM words
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying words: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// FindWord looks up the most recent entry whose word matches,
// case-insensitively. It returns nil when no entry matches.
func (s *Store) FindWord(w string) (*Entry, error) {
	row := s.db.QueryRow(`
		SELECT id, word, pronunciation, origin, definition, query, source, created_at
		FROM words
		WHERE word = ? COLLATE NOCASE
		ORDER BY created_at DESC
		LIMIT 1`, w)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Count returns the number of archived words.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting words: %w", err)
	}
	return n, nil
}

// Delete removes an entry by id.
func (s *Store) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM words WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting word: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	var source string
	var createdAt int64

	if err := row.Scan(
		&e.ID, &e.Word, &e.Pronunciation, &e.Origin, &e.Definition,
		&e.Query, &source, &createdAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("scanning word: %w", err)
	}

	e.Source = word.Source(source)
	e.Timestamp = time.Unix(createdAt, 0)
	return e, nil
}
