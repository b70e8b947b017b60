// Package convention holds the file-name rules applied while materializing a
// template: which names are dotfiles in disguise, which files are rendered,
// which carry callback data, and which are stray variant files removed at
// the end. The rules are plain data so they can be tested without a file
// system.
package convention

import (
	"path/filepath"
	"strings"
)

// PrefixRule rewrites a base-name prefix, e.g. "_gitignore" → ".gitignore".
type PrefixRule struct {
	From string
	To   string
}

// Conventions is the table of name rules.
type Conventions struct {
	// Rename rules apply to copied file and directory base names. The first
	// matching rule wins.
	Rename []PrefixRule
	// RenderSuffixes mark files rendered and replaced by the stripped name.
	RenderSuffixes []string
	// DataSuffixes mark files that are not copied and instead feed data to
	// the render context of the stripped name.
	DataSuffixes []string
	// StrayExtensions are removed from the output tree after rendering.
	StrayExtensions []string
}

// Default returns the table used by the bundled templates.
func Default() Conventions {
	return Conventions{
		Rename:          []PrefixRule{{From: "_", To: "."}},
		RenderSuffixes:  []string{".ejs", ".tmpl"},
		DataSuffixes:    []string{".data.yaml", ".data.json"},
		StrayExtensions: []string{".ts"},
	}
}

// DestName returns the real name of a template entry.
func (c Conventions) DestName(name string) string {
	for _, r := range c.Rename {
		if r.From != "" && strings.HasPrefix(name, r.From) {
			return r.To + strings.TrimPrefix(name, r.From)
		}
	}
	return name
}

// RenderTarget reports whether path is a template and, if so, the path its
// rendered output is written to.
func (c Conventions) RenderTarget(path string) (string, bool) {
	return stripSuffix(path, c.RenderSuffixes)
}

// DataTarget reports whether path is a data file and the path whose render
// context it contributes to.
func (c Conventions) DataTarget(path string) (string, bool) {
	return stripSuffix(path, c.DataSuffixes)
}

// IsStray reports whether path is removed by the cleanup pass.
func (c Conventions) IsStray(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.StrayExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func stripSuffix(path string, suffixes []string) (string, bool) {
	base := filepath.Base(path)
	for _, s := range suffixes {
		// A bare suffix (".ejs") names nothing.
		if strings.HasSuffix(base, s) && len(base) > len(s) {
			return strings.TrimSuffix(path, s), true
		}
	}
	return path, false
}
