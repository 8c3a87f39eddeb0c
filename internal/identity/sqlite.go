package identity

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteBackend stores the history document as one row of kv_store
// (see pkg/database/schema.sql).
type SQLiteBackend struct {
	DB  *sql.DB
	Key string
}

func NewSQLiteBackend(db *sql.DB, key string) *SQLiteBackend {
	return &SQLiteBackend{DB: db, Key: key}
}

func (s *SQLiteBackend) Name() string { return "sqlite" }

func (s *SQLiteBackend) Load(ctx context.Context) ([]byte, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, s.Key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	return []byte(value), nil
}

func (s *SQLiteBackend) Save(ctx context.Context, data []byte) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
		  value = excluded.value,
		  updated_at = excluded.updated_at
	`, s.Key, string(data))
	if err != nil {
		return fmt.Errorf("upsert history: %w", err)
	}
	return nil
}
