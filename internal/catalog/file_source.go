package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"flixhub/pkg/models"
)

// FileSource reads a catalog dump from disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string { return "file:" + s.Path }

func (s *FileSource) FetchAll(ctx context.Context) ([]*models.Work, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	works, err := DecodeWorks(b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return works, nil
}

type envelope struct {
	Success *bool          `json:"success"`
	Error   string         `json:"error"`
	Data    []*models.Work `json:"data"`
}

// DecodeWorks accepts either a bare JSON array of records or the
// {"success": true, "data": [...]} envelope served by catalog APIs.
func DecodeWorks(b []byte) ([]*models.Work, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, errors.New("empty catalog document")
	}

	if b[0] == '[' {
		var works []*models.Work
		if err := json.Unmarshal(b, &works); err != nil {
			return nil, err
		}
		return works, nil
	}

	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}
	if env.Success != nil && !*env.Success {
		if env.Error == "" {
			env.Error = "unknown error"
		}
		return nil, fmt.Errorf("catalog api: %s", env.Error)
	}
	return env.Data, nil
}
