// Package traverse walks a directory tree on an afero.Fs in pre-order or
// post-order, calling a directory visitor and a file visitor per node.
package traverse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// VisitFunc is called with the full path of a visited node.
type VisitFunc func(path string) error

// Noop is a visitor that does nothing.
func Noop(string) error { return nil }

// PreOrder visits every directory below root before its children and calls
// fileFn for every non-directory. The root itself is not passed to dirFn.
func PreOrder(fsys afero.Fs, root string, dirFn, fileFn VisitFunc) error {
	if err := checkRoot(fsys, root); err != nil {
		return err
	}
	return walk(fsys, root, dirFn, fileFn, true)
}

// PostOrder visits every directory below root after all of its descendants.
// It is the order required for recursive deletion.
func PostOrder(fsys afero.Fs, root string, dirFn, fileFn VisitFunc) error {
	if err := checkRoot(fsys, root); err != nil {
		return err
	}
	return walk(fsys, root, dirFn, fileFn, false)
}

func checkRoot(fsys afero.Fs, root string) error {
	info, err := lstat(fsys, root)
	if err != nil {
		return fmt.Errorf("traversing %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("traversing %s: not a directory", root)
	}
	return nil
}

func walk(fsys afero.Fs, dir string, dirFn, fileFn VisitFunc, pre bool) error {
	names, err := readDirNames(fsys, dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, name := range names {
		full := filepath.Join(dir, name)
		info, err := lstat(fsys, full)
		if err != nil {
			return fmt.Errorf("stat %s: %w", full, err)
		}

		// Symlinks are never followed; they reach fileFn like regular files.
		if !info.IsDir() {
			if err := fileFn(full); err != nil {
				return fmt.Errorf("visiting %s: %w", full, err)
			}
			continue
		}

		if pre {
			if err := dirFn(full); err != nil {
				return fmt.Errorf("visiting %s: %w", full, err)
			}
		}
		if err := walk(fsys, full, dirFn, fileFn, pre); err != nil {
			return err
		}
		if !pre {
			if err := dirFn(full); err != nil {
				return fmt.Errorf("visiting %s: %w", full, err)
			}
		}
	}
	return nil
}

// readDirNames snapshots the entries of dir so visitors may create or remove
// siblings without disturbing the iteration.
func readDirNames(fsys afero.Fs, dir string) ([]string, error) {
	f, err := fsys.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}
