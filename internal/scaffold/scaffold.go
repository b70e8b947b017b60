package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/xx-labs/create-xx/internal/convention"
	"github.com/xx-labs/create-xx/internal/features"
	"github.com/xx-labs/create-xx/internal/manifest"
	"github.com/xx-labs/create-xx/internal/pkgmanager"
)

// Scope values for the generated repository.
const (
	ScopePrivate = "private"
	ScopePublic  = "public"
)

const (
	initialVersion = "0.0.0"
	readmeName     = "README.md"
	binDir         = "bin"
	defaultHost    = "github.com"
)

// Options is everything one run needs. Prompting happens before Run.
type Options struct {
	// FS is the file system the project is written to.
	FS afero.Fs
	// Cwd resolves a relative TargetDir.
	Cwd       string
	TargetDir string
	// PackageName is the validated package.json name.
	PackageName        string
	DefaultProjectName string
	GeneratorPrefix    string

	GitHubUser  string
	GitHubScope string
	GitHubHost  string

	// Overwrite empties a non-empty target instead of refusing it.
	Overwrite bool
	Features  features.Features
	Env       map[string]string

	// Template is the tree copied into the project.
	Template fs.FS
	// Bin is copied to <root>/bin when SourceDir is empty.
	Bin fs.FS
	// SourceDir, when set, is a live checkout of the generator whose files
	// are copied into the project.
	SourceDir string

	Conventions    convention.Conventions
	PackageManager string
	GitInit        bool

	Logger zerolog.Logger
	// Out receives human-readable progress lines.
	Out io.Writer
}

// Result describes a completed run.
type Result struct {
	Root        string
	ProjectName string
	PackageName string
	Manifest    *manifest.Object
	Rendered    []string
	Removed     []string
	Warnings    []string
	GitInit     bool
}

// ResolveRoot returns the absolute project root for target relative to cwd.
func ResolveRoot(cwd, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(cwd, target)
}

// Run materializes the project described by opts.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Template == nil {
		return nil, errors.New("scaffold: no template")
	}
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.GitHubHost == "" {
		opts.GitHubHost = defaultHost
	}
	if opts.Conventions.RenderSuffixes == nil {
		opts.Conventions = convention.Default()
	}
	log := opts.Logger

	root := ResolveRoot(opts.Cwd, opts.TargetDir)
	projectName := filepath.Base(root)
	packageName := opts.PackageName
	if packageName == "" {
		packageName = projectName
	}
	res := &Result{Root: root, ProjectName: projectName, PackageName: packageName}

	log.Debug().
		Str("targetDir", opts.TargetDir).
		Str("projectName", projectName).
		Strs("features", opts.Features.Enabled()).
		Interface("normalized", opts.Features.Normalize()).
		Msg("resolved run options")

	if err := prepareDir(opts.FS, root, opts.Overwrite); err != nil {
		return nil, err
	}

	fmt.Fprintf(opts.Out, "\nScaffolding project in %s...\n", root)

	manifestPath := filepath.Join(root, manifest.FileName)
	initial := manifest.NewObject().Set("name", packageName).Set("version", initialVersion)
	if err := manifest.Write(opts.FS, manifestPath, initial); err != nil {
		return nil, err
	}

	callbacks := &Callbacks{}
	if err := CopyTemplate(opts.Template, opts.FS, root, opts.Conventions, callbacks); err != nil {
		return nil, fmt.Errorf("copying template: %w", err)
	}

	if opts.SourceDir != "" {
		if CopyProjectFiles(opts.FS, opts.SourceDir, opts.FS, root, excludedTop(opts.SourceDir, root), log) {
			fmt.Fprintf(opts.Out, "Copied project files to %s\n", root)
		}
	} else if opts.Bin != nil {
		dest := filepath.Join(root, binDir)
		if CopyTree(opts.Bin, opts.FS, dest, log) {
			fmt.Fprintf(opts.Out, "Copied files to %s\n", dest)
		}
	}

	merged, err := writeGeneratedManifest(opts, manifestPath, packageName, projectName)
	if err != nil {
		return nil, err
	}
	res.Manifest = merged

	validation, err := manifest.ValidateFile(opts.FS, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}
	for _, issue := range validation.Issues {
		res.Warnings = append(res.Warnings, issue.String())
	}

	store := NewDataStore()
	if err := callbacks.Run(ctx, store); err != nil {
		return nil, fmt.Errorf("running template callbacks: %w", err)
	}

	rc := RenderContext{
		Env:        opts.Env,
		Store:      store,
		Flags:      opts.Features.Normalize(),
		TargetDir:  opts.TargetDir,
		CreateName: CreateName(projectName, opts.DefaultProjectName, opts.GeneratorPrefix),
	}
	rendered, err := RenderTree(opts.FS, root, opts.Conventions, rc)
	if err != nil {
		return nil, fmt.Errorf("rendering templates: %w", err)
	}
	res.Rendered = rendered

	removed, err := CleanupStray(opts.FS, root, opts.Conventions)
	if err != nil {
		return nil, fmt.Errorf("removing stray files: %w", err)
	}
	res.Removed = removed

	if err := writeReadme(opts, root, packageName); err != nil {
		return nil, err
	}

	if opts.GitInit {
		res.GitInit = initGit(opts, root, projectName, res)
	}

	return res, nil
}

// writeGeneratedManifest merges the generated name, visibility and helper
// scripts into the manifest produced by the template copy.
func writeGeneratedManifest(opts Options, path, packageName, projectName string) (*manifest.Object, error) {
	existing, err := manifest.Read(opts.FS, path)
	if err != nil {
		return nil, err
	}

	remote := RemoteURL(opts.GitHubHost, opts.GitHubUser, projectName)
	generated := manifest.NewObject().
		Set("name", packageName).
		Set("private", opts.GitHubScope == ScopePrivate).
		Set("scripts", manifest.NewObject().
			Set("git", fmt.Sprintf("./bin/init-github.sh %s %s", opts.GitHubScope, opts.GitHubUser)).
			Set("set-g", "git remote set-url origin "+remote).
			Set("add-g", "git remote add origin "+remote))

	merged := manifest.SortDependencies(manifest.DeepMerge(existing, generated))
	if err := manifest.Write(opts.FS, path, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func writeReadme(opts Options, root, packageName string) error {
	path := filepath.Join(root, readmeName)
	exists, err := afero.Exists(opts.FS, path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if exists {
		return nil
	}

	content, err := GenerateReadme(ReadmeData{
		ProjectName:    packageName,
		PackageManager: opts.PackageManager,
		TypeScript:     opts.Features.TypeScript,
		Eslint:         opts.Features.Eslint || opts.Features.EslintWithPrettier,
	})
	if err != nil {
		return fmt.Errorf("generating README: %w", err)
	}
	if err := afero.WriteFile(opts.FS, path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// initGit only works on the host file system; elsewhere it records a warning.
func initGit(opts Options, root, projectName string, res *Result) bool {
	if _, ok := opts.FS.(*afero.OsFs); !ok {
		res.Warnings = append(res.Warnings, "git init skipped: project is not on the host file system")
		return false
	}
	created, err := InitRepository(root, RemoteURL(opts.GitHubHost, opts.GitHubUser, projectName))
	if err != nil {
		opts.Logger.Warn().Err(err).Str("root", root).Msg("git init failed")
		res.Warnings = append(res.Warnings, err.Error())
		return false
	}
	return created
}

// Instructions returns the next-step commands printed after a run.
func Instructions(cwd, root, pm string) []string {
	var lines []string
	if filepath.Clean(root) != filepath.Clean(cwd) {
		rel, err := filepath.Rel(cwd, root)
		if err != nil {
			rel = root
		}
		if strings.Contains(rel, " ") {
			rel = strconv.Quote(rel)
		}
		lines = append(lines, "cd "+rel)
	}
	return append(lines,
		pkgmanager.Command(pm, "git"),
		pkgmanager.Command(pm, "install"),
		pkgmanager.Command(pm, "dev"),
	)
}
