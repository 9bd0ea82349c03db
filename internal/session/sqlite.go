package session

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// documentKey is the single row key holding the session document.
const documentKey = "sessions"

// SQLiteBackend stores the session document in a single-row SQLite table.
// The document keeps its JSON shape; SQLite only provides the durable
// key-value slot.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) the database at dbPath.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// Load returns the stored document, or nil if none has been saved yet.
func (b *SQLiteBackend) Load() ([]byte, error) {
	row := b.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, documentKey)

	var value []byte
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}
	return value, nil
}

// Save upserts the document row.
func (b *SQLiteBackend) Save(data []byte) error {
	_, err := b.db.Exec(
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		documentKey, data,
	)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
