package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage fetches sample files by key.
type Storage interface {
	// Download streams the object stored under key to dst and returns the
	// number of bytes written.
	Download(ctx context.Context, key string, dst io.Writer) (int64, error)
}

// DownloadToFile downloads key into path, creating or truncating it. A
// partially written file is removed when the download fails.
func DownloadToFile(ctx context.Context, s Storage, key, path string) (n int64, err error) {
	if path == "" {
		path = filepath.Base(key)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailedToCreateFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrFailedToWriteFile, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return s.Download(ctx, key, f)
}

// cleanKey normalises an object key and rejects traversal outside the root.
func cleanKey(key string) (string, error) {
	key = strings.TrimPrefix(filepath.ToSlash(key), "/")
	if key == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidPath)
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %s", ErrInvalidPath, key)
		}
	}
	return key, nil
}

// copyContext copies src to dst, checking ctx between chunks.
func copyContext(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, 32*1024)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		nr, rerr := src.Read(buf)
		if nr > 0 {
			nw, werr := dst.Write(buf[:nr])
			written += int64(nw)
			if werr != nil {
				return written, fmt.Errorf("%w: %v", ErrFailedToWriteFile, werr)
			}
			if nw != nr {
				return written, fmt.Errorf("%w: %v", ErrFailedToWriteFile, io.ErrShortWrite)
			}
		}
		if errors.Is(rerr, io.EOF) {
			return written, nil
		}
		if rerr != nil {
			return written, fmt.Errorf("%w: %v", ErrFailedToReadFile, rerr)
		}
	}
}
