package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileGateway stores the blob in a single JSON file. Writes are
// atomic: temp file in the same directory, then rename.
type FileGateway struct {
	path string
}

// NewFileGateway creates the parent directory if needed.
func NewFileGateway(path string) (*FileGateway, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileGateway{path: path}, nil
}

func (g *FileGateway) Read(ctx context.Context) ([]byte, error) {
	b, err := os.ReadFile(g.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", g.path, err)
	}
	return b, nil
}

func (g *FileGateway) Write(ctx context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(g.path), ".bolt-notes-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), g.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (g *FileGateway) Close() error { return nil }
