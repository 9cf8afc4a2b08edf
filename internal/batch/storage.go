package batch

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage holds generated workbooks between batch creation and download.
type Storage interface {
	// Save writes a workbook and returns the name it is retrievable under
	Save(filename string, workbook []byte) (string, error)

	// Get retrieves a workbook by name
	Get(filename string) ([]byte, error)

	// Delete removes a workbook
	Delete(filename string) error
}

// LocalStorage keeps workbooks in a single flat directory on disk.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates a LocalStorage instance, creating the workbook
// directory if needed
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating workbook directory: %w", err)
	}

	return &LocalStorage{dir: dir}, nil
}

// Save writes a workbook into the storage directory
func (l *LocalStorage) Save(filename string, workbook []byte) (string, error) {
	path, err := l.resolve(filename)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, workbook, 0644); err != nil {
		return "", fmt.Errorf("writing workbook: %w", err)
	}
	return filename, nil
}

// Get reads a workbook back by the name Save returned
func (l *LocalStorage) Get(filename string) ([]byte, error) {
	path, err := l.resolve(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}
	return data, nil
}

// Delete removes a workbook from the storage directory
func (l *LocalStorage) Delete(filename string) error {
	path, err := l.resolve(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting workbook: %w", err)
	}
	return nil
}

// resolve maps a workbook name onto the storage directory. Names are flat;
// anything that would escape the directory is rejected.
func (l *LocalStorage) resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return "", fmt.Errorf("invalid workbook name: %q", filename)
	}
	return filepath.Join(l.dir, filename), nil
}
