package identity

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_MissingFileIsEmpty(t *testing.T) {
	b := NewFileBackend(filepath.Join(t.TempDir(), "history.json"))

	data, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "history.json")
	b := NewFileBackend(path)
	ctx := context.Background()

	require.NoError(t, b.Save(ctx, []byte(`{"fp":"id"}`)))

	data, err := b.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"fp":"id"}`, string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestFileBackend_WithHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	NewHistory(NewFileBackend(path)).Set("ghost-story::2020::Horror", "ghost-story-movie-live-2020")

	id, ok := NewHistory(NewFileBackend(path)).Get("ghost-story::2020::Horror")
	require.True(t, ok)
	assert.Equal(t, "ghost-story-movie-live-2020", id)
}

func TestFileBackend_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	h := NewHistory(NewFileBackend(path))
	_, ok := h.Get("anything")
	assert.False(t, ok)
}
