package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vbonduro/kitchenlist/internal/recipefile"
)

// LocalFile persists recipes to a single file on disk.
type LocalFile struct {
	path string
}

func NewLocalFile(path string) (*LocalFile, error) {
	if path == "" {
		return nil, fmt.Errorf("recipe file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create recipe directory: %w", err)
	}
	return &LocalFile{path: path}, nil
}

func (f *LocalFile) Path() string {
	return f.path
}

func (f *LocalFile) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, recipefile.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}
	return data, nil
}

// Save writes data to a temporary sibling and renames it over the target so a
// crash mid-write never leaves a truncated file behind.
func (f *LocalFile) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		if cerr := tmp.Close(); cerr != nil {
			slog.Error("failed to close temp file after write error", "error", cerr)
		}
		if rerr := os.Remove(tmpPath); rerr != nil {
			slog.Error("failed to remove temp file after write error", "error", rerr)
		}
		return fmt.Errorf("failed to write recipe file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		if rerr := os.Remove(tmpPath); rerr != nil {
			slog.Error("failed to remove temp file after close error", "error", rerr)
		}
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		if rerr := os.Remove(tmpPath); rerr != nil {
			slog.Error("failed to remove temp file after rename error", "error", rerr)
		}
		return fmt.Errorf("failed to replace recipe file: %w", err)
	}
	return nil
}

var _ recipefile.Persister = (*LocalFile)(nil)
