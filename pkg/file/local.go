package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStorage serves sample files from a directory. Keys are paths
// relative to it; keys reaching outside it are rejected.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &LocalStorage{baseDir: abs}, nil
}

func (s *LocalStorage) Download(ctx context.Context, key string, dst io.Writer) (int64, error) {
	key, err := cleanKey(key)
	if err != nil {
		return 0, err
	}

	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return 0, fmt.Errorf("%w: %s", ErrFileNotFound, key)
	case err != nil:
		return 0, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	case info.IsDir():
		return 0, fmt.Errorf("%w: %s", ErrIsDirectory, key)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	return copyContext(ctx, dst, f)
}
