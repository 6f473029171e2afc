package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer atomically replaces the artifact file on disk.
type Writer struct {
	path string
}

// NewWriter creates a writer targeting the configured artifact path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the artifact location on disk.
func (w *Writer) Path() string { return w.path }

// Write stores the artifact bytes, creating the parent directory when
// needed. The bytes go to a temp sibling first and are renamed into
// place so readers never observe a partial image.
func (w *Writer) Write(data []byte) error {
	dir := filepath.Dir(w.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create artifact directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp artifact: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close artifact: %w", err)
	}
	if err := os.Rename(tmpName, w.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace artifact: %w", err)
	}
	return nil
}
