package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold the file at path.
// Paths without a directory component, and SQLite in-memory names, are
// left alone.
func EnsureParentDir(path string) error {
	if path == "" || path == ":memory:" || filepath.Base(path) == path {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadFile reads a whole file, refusing anything above limit bytes.
func ReadFile(path string, limit int64) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() > limit {
		return nil, fmt.Errorf("%s is too large (%d bytes, limit %d)", path, fi.Size(), limit)
	}
	return os.ReadFile(path)
}
