// Package store persists the task list to a Markdown checklist file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"smallt/internal/task"
)

// Store reads and writes one task file. The file is the sole durable state;
// there is no index, cache, or journal next to it.
type Store struct {
	Path string
}

// New returns a store backed by the file at path.
func New(path string) *Store {
	return &Store{Path: path}
}

// Load reads the task file. A missing file is an empty list, not an error.
func (s *Store) Load() (task.List, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read task file %s: %w", s.Path, err)
	}
	return task.Parse(data), nil
}

// Save overwrites the task file with the serialized list. The write goes
// through a temp file in the same directory followed by a rename, so a
// failed save never leaves a truncated file behind.
func (s *Store) Save(list task.List) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp task file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(list.Marshal()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write task file %s: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write task file %s: %w", s.Path, err)
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace task file %s: %w", s.Path, err)
	}
	return nil
}
