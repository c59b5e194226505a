package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists generated export files and serves basic file
// operations. All operations take a bare file name; the store never
// touches anything outside its own directory.
type FileStore interface {
	// Write stores content under the given file name and returns the full path
	Write(name string, content []byte) (string, error)
	// Delete removes a previously written file
	Delete(name string) error
	// Size returns the file size in bytes
	Size(name string) (int64, error)
	// Path resolves a file name to the full path it is stored under
	Path(name string) (string, error)
}

// LocalStore writes export files to a directory on the local filesystem.
type LocalStore struct {
	dir string
}

// NewLocalStore creates a file store rooted at dir, creating it if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Path resolves name inside the export directory. Names carrying path
// separators or parent references are rejected so callers cannot reach
// files outside the store.
func (s *LocalStore) Path(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || cleaned == "." || cleaned == ".." {
		return "", fmt.Errorf("invalid export file name: %q", name)
	}
	return filepath.Join(s.dir, cleaned), nil
}

func (s *LocalStore) Write(name string, content []byte) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (s *LocalStore) Delete(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func (s *LocalStore) Size(name string) (int64, error) {
	path, err := s.Path(name)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// MIMEByPath derives a MIME type from the file extension
func MIMEByPath(path string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "csv":
		return "text/csv"
	case "json":
		return "application/json"
	case "pdf":
		return "application/pdf"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

var fileSizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count using powers of 1024 with two decimals
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	size := float64(bytes)
	unit := 0
	for size >= 1024 && unit < len(fileSizeUnits)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", size, fileSizeUnits[unit])
}
