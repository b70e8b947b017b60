// Package pkgmanager picks the JavaScript package manager the user invoked
// the tool through and formats commands for it.
package pkgmanager

import (
	"os"
	"strings"
)

// Supported package managers.
const (
	NPM  = "npm"
	Yarn = "yarn"
	PNPM = "pnpm"
)

// Detect returns the package manager named in an npm_config_user_agent
// string, preferring pnpm, then yarn, then npm.
func Detect(userAgent string) string {
	switch {
	case strings.Contains(userAgent, PNPM):
		return PNPM
	case strings.Contains(userAgent, Yarn):
		return Yarn
	default:
		return NPM
	}
}

// FromEnv detects the package manager from the environment.
func FromEnv() string {
	return Detect(os.Getenv("npm_config_user_agent"))
}

// Command formats the command that runs script with pm.
func Command(pm, script string, args ...string) string {
	if script == "install" {
		if pm == Yarn {
			return Yarn
		}
		return pm + " install"
	}

	var cmd string
	if pm == NPM {
		cmd = "npm run " + script
	} else {
		cmd = pm + " " + script
	}
	if len(args) == 0 {
		return cmd
	}
	if pm == NPM {
		return cmd + " -- " + strings.Join(args, " ")
	}
	return cmd + " " + strings.Join(args, " ")
}
