// Package cli defines the Cobra command tree for the create-xx CLI. The root
// command scaffolds a project; version and config are subcommands. Commands
// parse flags, ask questions and format output, and hand the work to
// internal packages.
package cli
