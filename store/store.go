// SPDX-License-Identifier: MIT
// Package store keeps the single save blob of a session on an afero
// filesystem: the OS filesystem for the CLI, an in-memory one for tests.
//
// Writes go to a temporary sibling file first and are renamed over the save,
// so a crash mid-write leaves the previous save intact.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrNoSave indicates that no save exists.
var ErrNoSave = errors.New("store: no save")

// DefaultPath is the save location used by NewMemory.
const DefaultPath = "ticketrail-save.json"

const filePerm = 0o644

// File stores one blob at a fixed path.
type File struct {
	fs   afero.Fs
	path string
}

// New returns a File storing at path on fs. Panics on nil fs or empty path.
func New(fs afero.Fs, path string) *File {
	if fs == nil {
		panic("store: New(nil fs)")
	}
	if path == "" {
		panic("store: New(empty path)")
	}

	return &File{fs: fs, path: path}
}

// NewOS stores on the operating-system filesystem.
func NewOS(path string) *File {
	return New(afero.NewOsFs(), path)
}

// NewMemory stores in a fresh in-memory filesystem.
func NewMemory() *File {
	return New(afero.NewMemMapFs(), DefaultPath)
}

// Path returns the save location.
func (f *File) Path() string {
	return f.path
}

// Save replaces the stored blob.
func (f *File) Save(blob []byte) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: mkdir %s: %w", dir, err)
		}
	}
	tmp := f.path + ".tmp"
	if err := afero.WriteFile(f.fs, tmp, blob, filePerm); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := f.fs.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("store: rename %s: %w", tmp, err)
	}

	return nil
}

// Load returns the stored blob or ErrNoSave.
func (f *File) Load() ([]byte, error) {
	blob, err := afero.ReadFile(f.fs, f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoSave, f.path)
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", f.path, err)
	}

	return blob, nil
}

// Exists reports whether a save is present.
func (f *File) Exists() (bool, error) {
	return afero.Exists(f.fs, f.path)
}

// Clear removes the save; a missing save is not an error.
func (f *File) Clear() error {
	err := f.fs.Remove(f.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: remove %s: %w", f.path, err)
	}

	return nil
}
