// Package blob stores uploaded documents on the local filesystem.
package blob

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// FileStore writes objects below a root directory and serves them under a
// base URL that mirrors the key.
type FileStore struct {
	root    string
	baseURL string
}

func NewFileStore(root, baseURL string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create blob root %s: %w", root, err)
	}
	return &FileStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Root is the directory the HTTP layer serves under the base URL.
func (s *FileStore) Root() string { return s.root }

// Put writes the object and returns its URL. The file appears atomically.
func (s *FileStore) Put(ctx context.Context, object ports.BlobObject) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, err := cleanKey(object.Key)
	if err != nil {
		return "", err
	}

	target := filepath.Join(s.root, filepath.FromSlash(key))
	if err = os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return "", fmt.Errorf("create blob dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err = tmp.Write(object.Data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close blob: %w", err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("publish blob: %w", err)
	}

	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + "/" + strings.Join(segments, "/"), nil
}

func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.Contains(key, "..") {
		return "", errs.NewValueIsInvalidError("key")
	}
	return cleaned, nil
}
