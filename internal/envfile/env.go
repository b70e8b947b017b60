// Package envfile reads KEY=value default files that seed every template's
// render context.
package envfile

import (
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/subosito/gotenv"
)

// Entry represents a single key-value pair from a .env file.
type Entry struct {
	Key   string
	Value string
}

// Parse reads .env content one line at a time. Quotes are removed, "export"
// prefixes and comments are ignored, and \n escapes expand inside double
// quotes. Values are kept as written: "$NAME" is not expanded. Lines that do
// not match KEY=value are skipped.
func Parse(r io.Reader) (map[string]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading env: %w", err)
	}
	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")

	vars := make(map[string]string)
	for _, line := range strings.Split(normalized, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		env, err := gotenv.StrictParse(strings.NewReader(escapeDollars(trimmed)))
		if err != nil {
			continue
		}
		for k, v := range env {
			vars[k] = v
		}
	}
	return vars, nil
}

// escapeDollars escapes "$" so gotenv leaves references unexpanded. Single
// quoted values are never expanded and keep their text untouched.
func escapeDollars(line string) string {
	if i := strings.IndexAny(line, "=:"); i >= 0 {
		if strings.HasPrefix(strings.TrimSpace(line[i+1:]), "'") {
			return line
		}
	}
	return strings.ReplaceAll(line, "$", `\$`)
}

// Load parses the named file from fsys.
func Load(fsys fs.FS, name string) (map[string]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening env file %s: %w", name, err)
	}
	defer f.Close()

	vars, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", name, err)
	}
	return vars, nil
}

// Entries returns vars sorted by key, for display.
func Entries(vars map[string]string) []Entry {
	entries := make([]Entry, 0, len(vars))
	for k, v := range vars {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// RedactValue returns a redacted version of value if the key name contains
// a sensitive pattern (case-insensitive substring match).
// Values with 4+ chars show the first 4 chars + "***".
// Values with fewer than 4 chars are fully redacted as "***".
func RedactValue(key, value string) string {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if len(value) >= 4 {
				return value[:4] + "***"
			}
			return "***"
		}
	}
	return value
}
