package scaffold

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/xx-labs/create-xx/internal/traverse"
)

// ErrDirNotEmpty is returned when the target has content and overwriting was
// not confirmed.
var ErrDirNotEmpty = errors.New("target directory is not empty")

// CanSkipEmptying reports whether dir can be used as is: it is absent, empty,
// or holds nothing but a .git directory.
func CanSkipEmptying(fsys afero.Fs, dir string) (bool, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", dir, err)
	}
	if len(entries) == 0 {
		return true, nil
	}
	return len(entries) == 1 && entries[0].Name() == ".git", nil
}

// EmptyDir removes everything below dir, keeping dir itself. It is a no-op
// when dir does not exist.
func EmptyDir(fsys afero.Fs, dir string) error {
	exists, err := afero.DirExists(fsys, dir)
	if err != nil {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if !exists {
		return nil
	}
	return traverse.PostOrder(fsys, dir, fsys.Remove, fsys.Remove)
}

// prepareDir empties root when overwrite is set, creates it when absent, and
// refuses a non-empty root otherwise.
func prepareDir(fsys afero.Fs, root string, overwrite bool) error {
	exists, err := afero.DirExists(fsys, root)
	if err != nil {
		return fmt.Errorf("checking %s: %w", root, err)
	}
	if !exists {
		if err := fsys.MkdirAll(root, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", root, err)
		}
		return nil
	}

	skip, err := CanSkipEmptying(fsys, root)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}
	if !overwrite {
		return fmt.Errorf("%w: %s", ErrDirNotEmpty, root)
	}
	if err := EmptyDir(fsys, root); err != nil {
		return fmt.Errorf("emptying %s: %w", root, err)
	}
	return nil
}
