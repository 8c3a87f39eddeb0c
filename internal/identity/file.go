package identity

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// FileBackend stores the history document in a JSON file. A sibling .lock
// file serializes access between processes and saves replace the file
// atomically.
type FileBackend struct {
	path string
	lock *flock.Flock
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

func (f *FileBackend) Name() string { return "file" }

func (f *FileBackend) Load(ctx context.Context) ([]byte, error) {
	if err := f.acquire(ctx); err != nil {
		return nil, err
	}
	defer f.lock.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return data, nil
}

func (f *FileBackend) Save(ctx context.Context, data []byte) error {
	if err := f.acquire(ctx); err != nil {
		return err
	}
	defer f.lock.Unlock()

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

func (f *FileBackend) acquire(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("ensure history dir: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := f.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock %s: %w", f.path, err)
	}
	if !locked {
		return fmt.Errorf("lock %s: timed out", f.path)
	}
	return nil
}
