package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"

	"github.com/xx-labs/create-xx/internal/convention"
	"github.com/xx-labs/create-xx/internal/manifest"
)

const gitignoreName = ".gitignore"

// CopyTemplate copies the template tree src into dstRoot on dst. Reserved
// name prefixes are translated, an existing package.json is merged instead
// of overwritten, an existing .gitignore is appended to, and data files
// register a callback in cb instead of being copied.
func CopyTemplate(src fs.FS, dst afero.Fs, dstRoot string, conv convention.Conventions, cb *Callbacks) error {
	if err := dst.MkdirAll(dstRoot, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dstRoot, err)
	}
	return copyTemplateDir(src, ".", dst, dstRoot, conv, cb)
}

func copyTemplateDir(src fs.FS, srcDir string, dst afero.Fs, dstDir string, conv convention.Conventions, cb *Callbacks) error {
	entries, err := fs.ReadDir(src, srcDir)
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		srcPath := path.Join(srcDir, entry.Name())
		dstPath := filepath.Join(dstDir, conv.DestName(entry.Name()))

		if entry.IsDir() {
			if err := dst.MkdirAll(dstPath, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", dstPath, err)
			}
			if err := copyTemplateDir(src, srcPath, dst, dstPath, conv, cb); err != nil {
				return err
			}
			continue
		}

		if target, ok := conv.DataTarget(dstPath); ok {
			cb.Add(dataCallback(src, srcPath, target))
			continue
		}

		if err := copyTemplateFile(src, srcPath, entry, dst, dstPath); err != nil {
			return err
		}
	}
	return nil
}

func copyTemplateFile(src fs.FS, srcPath string, entry fs.DirEntry, dst afero.Fs, dstPath string) error {
	data, err := fs.ReadFile(src, srcPath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", srcPath, err)
	}

	exists, err := afero.Exists(dst, dstPath)
	if err != nil {
		return fmt.Errorf("checking %s: %w", dstPath, err)
	}

	switch base := filepath.Base(dstPath); {
	case exists && base == manifest.FileName:
		return mergeManifest(dst, dstPath, data)
	case exists && base == gitignoreName:
		return appendFile(dst, dstPath, data)
	}

	mode, err := fileMode(entry)
	if err != nil {
		return fmt.Errorf("stat template %s: %w", srcPath, err)
	}
	if err := afero.WriteFile(dst, dstPath, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", dstPath, err)
	}
	// WriteFile leaves the mode of an existing file alone.
	if err := dst.Chmod(dstPath, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", dstPath, err)
	}
	return nil
}

// mergeManifest folds a template package.json into the one already written.
func mergeManifest(dst afero.Fs, dstPath string, templateData []byte) error {
	existing, err := manifest.Read(dst, dstPath)
	if err != nil {
		return err
	}
	incoming, err := manifest.Parse(templateData)
	if err != nil {
		return fmt.Errorf("parsing template manifest for %s: %w", dstPath, err)
	}
	return manifest.Write(dst, dstPath, manifest.SortDependencies(manifest.DeepMerge(existing, incoming)))
}

func appendFile(dst afero.Fs, dstPath string, data []byte) error {
	existing, err := afero.ReadFile(dst, dstPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dstPath, err)
	}
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		existing = append(existing, '\n')
	}
	if err := afero.WriteFile(dst, dstPath, append(existing, data...), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dstPath, err)
	}
	return nil
}

// fileMode keeps executable bits. Embedded files report no permission bits,
// so shell scripts are always made executable.
func fileMode(entry fs.DirEntry) (os.FileMode, error) {
	info, err := entry.Info()
	if err != nil {
		return 0, err
	}
	if info.Mode().Perm()&0111 != 0 || strings.HasSuffix(entry.Name(), ".sh") {
		return 0755, nil
	}
	return 0644, nil
}

// dataCallback reads a YAML or JSON mapping and merges it into the render
// data of target.
func dataCallback(src fs.FS, srcPath, target string) Callback {
	return func(_ context.Context, store *DataStore) error {
		raw, err := fs.ReadFile(src, srcPath)
		if err != nil {
			return fmt.Errorf("reading data file %s: %w", srcPath, err)
		}
		var data map[string]any
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("parsing data file %s: %w", srcPath, err)
		}
		store.Merge(target, data)
		return nil
	}
}

// defaultExcludes are skipped when copying a live project checkout:
// dependency and VCS directories at any depth, and the checkout's own
// manifest at the top level.
var defaultExcludes = []string{"node_modules", ".git", "/" + manifest.FileName}

// CopyProjectFiles copies a live source checkout into dstDir, skipping
// dependency and VCS directories, the top-level manifest and, when given,
// the top-level entry excludeTop (the target itself when it lives inside the
// source). Failures are logged and swallowed; the return value reports
// whether the copy completed.
func CopyProjectFiles(src afero.Fs, srcDir string, dst afero.Fs, dstDir, excludeTop string, logger zerolog.Logger) bool {
	if err := copyProjectFiles(src, srcDir, dst, dstDir, excludeTop); err != nil {
		logger.Error().Err(err).Str("source", srcDir).Str("dest", dstDir).Msg("copying project files failed")
		return false
	}
	logger.Info().Str("dest", dstDir).Msg("copied project files")
	return true
}

func copyProjectFiles(src afero.Fs, srcDir string, dst afero.Fs, dstDir, excludeTop string) error {
	patterns := make([]gitignore.Pattern, 0, len(defaultExcludes)+1)
	for _, p := range defaultExcludes {
		patterns = append(patterns, gitignore.ParsePattern(p, nil))
	}
	if excludeTop != "" {
		patterns = append(patterns, gitignore.ParsePattern("/"+excludeTop, nil))
	}
	matcher := gitignore.NewMatcher(patterns)

	if err := dst.MkdirAll(dstDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dstDir, err)
	}
	return copyFiltered(src, srcDir, nil, dst, dstDir, matcher)
}

func copyFiltered(src afero.Fs, srcDir string, rel []string, dst afero.Fs, dstDir string, matcher gitignore.Matcher) error {
	entries, err := afero.ReadDir(src, srcDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcDir, err)
	}

	for _, info := range entries {
		parts := append(append([]string(nil), rel...), info.Name())
		if matcher.Match(parts, info.IsDir()) {
			continue
		}

		srcPath := filepath.Join(srcDir, info.Name())
		dstPath := filepath.Join(dstDir, info.Name())

		switch {
		case info.IsDir():
			if err := dst.MkdirAll(dstPath, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", dstPath, err)
			}
			if err := copyFiltered(src, srcPath, parts, dst, dstPath, matcher); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			data, err := afero.ReadFile(src, srcPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", srcPath, err)
			}
			if err := afero.WriteFile(dst, dstPath, data, info.Mode().Perm()); err != nil {
				return fmt.Errorf("writing %s: %w", dstPath, err)
			}
		}
		// Symlinks and other special files are skipped.
	}
	return nil
}

// CopyTree copies an embedded tree verbatim into dstDir with the same
// best-effort policy as CopyProjectFiles.
func CopyTree(src fs.FS, dst afero.Fs, dstDir string, logger zerolog.Logger) bool {
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		target := filepath.Join(dstDir, filepath.FromSlash(p))
		if d.IsDir() {
			return dst.MkdirAll(target, 0755)
		}
		return copyTemplateFileVerbatim(src, p, d, dst, target)
	})
	if err != nil {
		logger.Error().Err(err).Str("dest", dstDir).Msg("copying files failed")
		return false
	}
	logger.Info().Str("dest", dstDir).Msg("copied files")
	return true
}

func copyTemplateFileVerbatim(src fs.FS, p string, d fs.DirEntry, dst afero.Fs, target string) error {
	data, err := fs.ReadFile(src, p)
	if err != nil {
		return err
	}
	mode, err := fileMode(d)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(dst, target, data, mode); err != nil {
		return err
	}
	return dst.Chmod(target, mode)
}

// excludedTop returns the first path component of target relative to
// source when target is nested inside source, or "".
func excludedTop(source, target string) string {
	rel, err := filepath.Rel(source, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return strings.Split(rel, string(filepath.Separator))[0]
}
