// Package config resolves device, parameter and font files against a
// search path of configuration directories.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dirs is an ordered list of configuration directories. The current
// directory is always searched first.
type Dirs []string

// Open opens name, trying the current directory and then each directory in
// order. An absolute name is opened directly. A name missing from every
// directory reports fs.ErrNotExist.
func (dirs Dirs) Open(name string) (*os.File, error) {
	if filepath.IsAbs(name) {
		return os.Open(name)
	}
	for _, dir := range append([]string{"."}, dirs...) {
		f, err := os.Open(filepath.Join(dir, name))
		if err == nil {
			return f, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
}
