// ABOUTME: SQLite-backed Slot storing each key as one row of the slots table.
// ABOUTME: Uses WAL mode and upserts so a save replaces the previous value in one statement.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SqliteSlot keeps slot values in a SQLite database.
type SqliteSlot struct {
	db *sql.DB
}

var _ Slot = (*SqliteSlot)(nil)

// OpenSqliteSlot opens or creates the database at path and ensures the schema.
func OpenSqliteSlot(path string) (*SqliteSlot, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at TEXT NOT NULL
		);`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SqliteSlot{db: db}, nil
}

// Load returns the value stored under key.
func (s *SqliteSlot) Load(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("query slot %s: %w", key, err)
	}
	return value, nil
}

// Save upserts the value under key.
func (s *SqliteSlot) Save(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (key, value, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key,
		data,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SqliteSlot) Close() error {
	return s.db.Close()
}
