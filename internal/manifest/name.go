package manifest

import (
	"regexp"
	"strings"
)

var (
	packageNamePattern = regexp.MustCompile(`^(?:@[a-z0-9-*~][a-z0-9-*._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)
	whitespaceRun      = regexp.MustCompile(`\s+`)
	leadingDotOrUnder  = regexp.MustCompile(`^[._]`)
	invalidNameRun     = regexp.MustCompile(`[^a-z0-9-~]+`)
)

// IsValidPackageName reports whether name is acceptable as a package.json name.
func IsValidPackageName(name string) bool {
	return packageNamePattern.MatchString(name)
}

// ToValidPackageName turns an arbitrary directory name into a package name
// candidate offered as the prompt default.
func ToValidPackageName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = leadingDotOrUnder.ReplaceAllString(s, "")
	return invalidNameRun.ReplaceAllString(s, "-")
}
