// Package scaffold materializes a new project from a template tree. Run
// executes the pipeline in order: prepare the target directory, write the
// initial manifest, copy the template, copy auxiliary files, merge the
// generated manifest fields, run data callbacks, render templates, and remove
// stray variant files.
package scaffold
