// Package storage persists uploaded file contents on local disk.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalFileStore writes uploads under a single directory, keyed by a
// generated name so user-supplied filenames never touch the filesystem.
type LocalFileStore struct {
	dir string
}

func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalFileStore{dir: dir}, nil
}

// Save writes the content and returns the generated stored name. The original
// filename only contributes its extension.
func (s *LocalFileStore) Save(originalFilename string, content io.Reader) (string, error) {
	ext := filepath.Ext(originalFilename)
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		ext = ""
	}
	storedName := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return storedName, nil
}

// Open returns the stored content for reading. The caller closes it.
func (s *LocalFileStore) Open(storedName string) (io.ReadCloser, error) {
	if filepath.Base(storedName) != storedName {
		return nil, fmt.Errorf("invalid stored name")
	}

	f, err := os.Open(filepath.Join(s.dir, storedName))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// Remove deletes the stored content. Missing files are not an error: metadata
// cleanup must win over a half-done earlier delete.
func (s *LocalFileStore) Remove(storedName string) error {
	if filepath.Base(storedName) != storedName {
		return fmt.Errorf("invalid stored name")
	}

	if err := os.Remove(filepath.Join(s.dir, storedName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
