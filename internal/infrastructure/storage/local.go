// Package storage persists uploaded binaries under a public static-assets
// root, nested by folder, named by caller-supplied unique filenames.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalStorage writes files beneath a fixed uploads root. Each step is a
// separate method so the upload handler can attribute failures precisely.
type LocalStorage struct {
	root          string
	publicBaseURL string
}

func NewLocalStorage(root, publicBaseURL string) (*LocalStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve uploads root: %w", err)
	}
	return &LocalStorage{root: abs, publicBaseURL: publicBaseURL}, nil
}

// Root returns the absolute uploads root.
func (s *LocalStorage) Root() string {
	return s.root
}

// FolderPath returns the absolute path of a folder under the root.
func (s *LocalStorage) FolderPath(folder string) string {
	return filepath.Join(s.root, folder)
}

// EnsureFolder creates the destination folder if absent. Safe under
// concurrent calls: MkdirAll is idempotent.
func (s *LocalStorage) EnsureFolder(folder string) error {
	if err := os.MkdirAll(s.FolderPath(folder), 0755); err != nil {
		return fmt.Errorf("failed to create upload folder: %w", err)
	}
	return nil
}

// WriteFile writes the full byte buffer to folder/filename. The file is
// written once and never mutated.
func (s *LocalStorage) WriteFile(folder, filename string, data []byte) error {
	path := filepath.Join(s.FolderPath(folder), filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// PublicURL returns the URL path the stored file is served from.
func (s *LocalStorage) PublicURL(folder, filename string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, folder, filename)
}
