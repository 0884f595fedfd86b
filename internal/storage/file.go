package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileProvider persists each collection as one encoded file under a data
// directory. It is the local analogue of the original browser's local storage.
type FileProvider struct {
	dir string
}

// NewFileProvider creates the data directory if needed.
func NewFileProvider(dir string) (*FileProvider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileProvider{dir: dir}, nil
}

func (p *FileProvider) path(c Collection) string {
	return filepath.Join(p.dir, string(c)+".rec")
}

// Load reads and decodes a collection file. A missing or corrupt file is
// reported as ErrNotFound so callers fall back to defaults instead of failing.
func (p *FileProvider) Load(_ context.Context, c Collection, into any) error {
	data, err := os.ReadFile(p.path(c))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read collection %s: %w", c, err)
	}
	if err := Decode(data, into); err != nil {
		return ErrNotFound
	}
	return nil
}

// Save writes the encoded collection atomically via a temp file rename.
func (p *FileProvider) Save(_ context.Context, c Collection, value any) error {
	data, err := Encode(value)
	if err != nil {
		return err
	}
	tmp := p.path(c) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", c, err)
	}
	if err := os.Rename(tmp, p.path(c)); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", c, err)
	}
	return nil
}

// Reset removes every collection file.
func (p *FileProvider) Reset(_ context.Context) error {
	for _, c := range Collections {
		if err := os.Remove(p.path(c)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove collection %s: %w", c, err)
		}
	}
	return nil
}

// Ping checks the data directory is still accessible.
func (p *FileProvider) Ping(_ context.Context) error {
	if _, err := os.Stat(p.dir); err != nil {
		return fmt.Errorf("data directory unavailable: %w", err)
	}
	return nil
}
