package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sahaara/core/internal/ports"
)

// SqliteStore is the alternative document store backend: the same two-key
// document model as the file store, kept in a single sqlite table. Still a
// local, single-writer store; sqlite just makes the documents one file and
// survives partially written directories.
type SqliteStore struct {
	db *sqlx.DB
}

const createDocumentsTable = `
	CREATE TABLE IF NOT EXISTS documents (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`

// NewSqliteStore opens (and initializes) the database at path.
func NewSqliteStore(path string) (*SqliteStore, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	if _, err := db.Exec(createDocumentsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite store: %w", err)
	}

	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM documents WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read document %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SqliteStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO documents (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("write document %s: %w", key, err)
	}
	return nil
}

func (s *SqliteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	return nil
}

func (s *SqliteStore) Close() error {
	return s.db.Close()
}

var _ ports.KeyValueStore = (*SqliteStore)(nil)
