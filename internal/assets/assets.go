// Package assets embeds the project template, the helper scripts copied to
// <project>/bin and the default environment file.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:template
var templateFS embed.FS

//go:embed bin
var binFS embed.FS

//go:embed defaults.env
var defaultEnv []byte

// DefaultEnvName is the file name of the embedded environment defaults.
const DefaultEnvName = "defaults.env"

// Template returns the bundled project template rooted at its top directory.
func Template() fs.FS {
	sub, err := fs.Sub(templateFS, "template")
	if err != nil {
		panic(err)
	}
	return sub
}

// Bin returns the helper scripts copied into <project>/bin.
func Bin() fs.FS {
	sub, err := fs.Sub(binFS, "bin")
	if err != nil {
		panic(err)
	}
	return sub
}

// DefaultEnv returns the raw contents of defaults.env.
func DefaultEnv() []byte {
	return defaultEnv
}
