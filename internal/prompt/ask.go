package prompt

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/xx-labs/create-xx/internal/manifest"
	"github.com/xx-labs/create-xx/internal/scaffold"
)

// Scopes offered for the generated repository.
var Scopes = []string{scaffold.ScopePrivate, scaffold.ScopePublic}

// Input is what is known before asking.
type Input struct {
	FS  afero.Fs
	Cwd string
	// TargetDir is the positional argument; empty asks for a project name.
	TargetDir          string
	DefaultProjectName string
	Force              bool
	GitHubUser         string
	GitHubScope        string
}

// Answers are the resolved choices for one run.
type Answers struct {
	TargetDir   string
	Overwrite   bool
	PackageName string
	GitHubUser  string
	GitHubScope string
}

func required(what string) Validator {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func validPackageName(s string) error {
	if !manifest.IsValidPackageName(s) {
		return errors.New("invalid package.json name")
	}
	return nil
}

func cleanTarget(dir string) string {
	dir = strings.TrimSpace(dir)
	if trimmed := strings.TrimRight(dir, `/\`); trimmed != "" {
		return trimmed
	}
	return dir
}

// Ask runs the question flow: project name (without a target argument),
// overwrite confirmation (when the target has content and Force is unset),
// package name (when the directory name is not a valid one), GitHub user and
// repository scope. The overwrite question defaults to yes; declining it
// returns ErrCancelled.
func Ask(p Prompter, in Input) (*Answers, error) {
	a := &Answers{TargetDir: cleanTarget(in.TargetDir), Overwrite: in.Force}

	if a.TargetDir == "" {
		name, err := p.Text("Project name:", in.DefaultProjectName, required("project name"))
		if err != nil {
			return nil, err
		}
		a.TargetDir = cleanTarget(name)
	}

	root := scaffold.ResolveRoot(in.Cwd, a.TargetDir)
	if !in.Force {
		skip, err := scaffold.CanSkipEmptying(in.FS, root)
		if err != nil {
			return nil, err
		}
		if !skip {
			ok, err := p.Confirm(overwriteQuestion(a.TargetDir), true)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, ErrCancelled
			}
			a.Overwrite = true
		}
	}

	a.PackageName = filepath.Base(root)
	if !manifest.IsValidPackageName(a.PackageName) {
		name, err := p.Text("Package name:", manifest.ToValidPackageName(a.PackageName), validPackageName)
		if err != nil {
			return nil, err
		}
		a.PackageName = name
	}

	user, err := p.Text("GitHub user:", in.GitHubUser, required("GitHub user"))
	if err != nil {
		return nil, err
	}
	a.GitHubUser = user

	scope, err := p.Select("Repository visibility:", Scopes, scopeIndex(in.GitHubScope))
	if err != nil {
		return nil, err
	}
	a.GitHubScope = scope

	return a, nil
}

// Defaults resolves the answers without asking, as --yes does. A non-empty
// target is only emptied when Force is set.
func Defaults(in Input) *Answers {
	a := &Answers{
		TargetDir:   cleanTarget(in.TargetDir),
		Overwrite:   in.Force,
		GitHubUser:  in.GitHubUser,
		GitHubScope: in.GitHubScope,
	}
	if a.TargetDir == "" {
		a.TargetDir = in.DefaultProjectName
	}
	if a.GitHubScope == "" {
		a.GitHubScope = scaffold.ScopePrivate
	}
	a.PackageName = filepath.Base(scaffold.ResolveRoot(in.Cwd, a.TargetDir))
	if !manifest.IsValidPackageName(a.PackageName) {
		a.PackageName = manifest.ToValidPackageName(a.PackageName)
	}
	return a
}

func overwriteQuestion(target string) string {
	where := "Current directory"
	if target != "." {
		where = fmt.Sprintf("Target directory %q", target)
	}
	return where + " is not empty. Remove existing files and continue?"
}

func scopeIndex(scope string) int {
	for i, s := range Scopes {
		if s == scope {
			return i
		}
	}
	return 0
}
