package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate(t *testing.T) {
	cfg := Config{Path: filepath.Join(t.TempDir(), "nested", "data.db")}

	db, err := Open(cfg)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	// idempotent
	require.NoError(t, Migrate(ctx, db))

	_, err = db.ExecContext(ctx, `INSERT INTO kv_store (key, value) VALUES (?, ?)`, "k", "{}")
	require.NoError(t, err)

	var v string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, "k").Scan(&v))
	assert.Equal(t, "{}", v)
}

func TestDefaultConfig_EnvOverride(t *testing.T) {
	t.Setenv("FLIXHUB_DB_PATH", "/tmp/flixhub-test.db")
	assert.Equal(t, "/tmp/flixhub-test.db", DefaultConfig().Path)
}

func TestDefaultConfig_DataDir(t *testing.T) {
	t.Setenv("FLIXHUB_DB_PATH", "")
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, filepath.Join("/home/tester", ".flixhub", "data.db"), DefaultConfig().Path)
}
