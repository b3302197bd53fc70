package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File stores each key as a "<key>.json" file in a folder. Writes replace the
// file atomically.
type File struct {
	Dir string
}

// NewFile returns a store in dir. The folder is created on first write.
func NewFile(dir string) *File { return &File{Dir: dir} }

func (s *File) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(s.Dir, key+".json"), nil
}

// Get returns the content of the key file.
func (s *File) Get(_ context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

// Put writes value to a temporary file, then renames it over the key file.
func (s *File) Put(_ context.Context, key string, value []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("could not create store folder %q: %w", s.Dir, err)
	}
	f, err := os.CreateTemp(s.Dir, "."+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file in %q: %w", s.Dir, err)
	}
	defer os.Remove(f.Name()) // no-op once renamed

	if _, err := f.Write(value); err != nil {
		f.Close()
		return fmt.Errorf("could not write %q: %w", f.Name(), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not write %q: %w", f.Name(), err)
	}
	if err := os.Rename(f.Name(), p); err != nil {
		return fmt.Errorf("could not replace %q: %w", p, err)
	}
	return nil
}
