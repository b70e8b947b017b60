package cli

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/xx-labs/create-xx/internal/assets"
	"github.com/xx-labs/create-xx/internal/banner"
	"github.com/xx-labs/create-xx/internal/branding"
	"github.com/xx-labs/create-xx/internal/config"
	"github.com/xx-labs/create-xx/internal/convention"
	"github.com/xx-labs/create-xx/internal/envfile"
	"github.com/xx-labs/create-xx/internal/features"
	"github.com/xx-labs/create-xx/internal/logging"
	"github.com/xx-labs/create-xx/internal/pkgmanager"
	"github.com/xx-labs/create-xx/internal/prompt"
	"github.com/xx-labs/create-xx/internal/scaffold"
)

var (
	// featureFlags holds one value per recognized flag name and alias.
	featureFlags = make(map[string]*bool)

	createWith        []string
	createTemplateDir string
	createSourceDir   string
	createEnvFile     string
	createGitInit     bool
	createYes         bool
)

func init() {
	flags := rootCmd.Flags()
	for _, f := range features.Recognized {
		featureFlags[f.Name] = flags.Bool(f.Name, false, f.Usage)
		for _, alias := range f.Aliases {
			featureFlags[alias] = flags.Bool(alias, false, "Alias for --"+f.Name)
		}
	}
	flags.StringArrayVar(&createWith, "with", nil, "Enable a template flag the CLI does not know (repeatable)")
	flags.StringVar(&createTemplateDir, "template-dir", "", "Use a template directory instead of the bundled one")
	flags.StringVar(&createSourceDir, "source-dir", "", "Copy a generator checkout into the project instead of the bundled bin/")
	flags.StringVar(&createEnvFile, "env-file", "", "Environment defaults for templates (default: bundled defaults.env)")
	flags.BoolVar(&createGitInit, "git-init", false, "Initialize a git repository with an origin remote")
	flags.BoolVarP(&createYes, "yes", "y", false, "Accept defaults without prompting")
}

// collectFeatures folds the flag values into a Features set.
func collectFeatures() features.Features {
	var f features.Features
	for name, on := range featureFlags {
		if *on {
			f.Set(name)
		}
	}
	for _, name := range createWith {
		f.Set(name)
	}
	return f
}

func runCreate(cmd *cobra.Command, args []string) error {
	log := logging.GetLogger("cli")
	out := cmd.OutOrStdout()
	settings := config.Current()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	feats := collectFeatures()
	log.Debug().Strs("argv", os.Args).Strs("args", args).Msg("parsed command line")

	// A positional target doubles as the default project name. The branding
	// default applies only when the name is prompted for.
	target, defaultName := "", branding.DefaultProjectName()
	if len(args) > 0 {
		target, defaultName = args[0], args[0]
	}
	in := prompt.Input{
		FS:                 afero.NewOsFs(),
		Cwd:                cwd,
		TargetDir:          target,
		DefaultProjectName: defaultName,
		Force:              feats.Force,
		GitHubUser:         settings.GitHubUser,
		GitHubScope:        settings.GitHubScope,
	}

	var answers *prompt.Answers
	if createYes {
		answers = prompt.Defaults(in)
	} else {
		fmt.Fprintln(out, banner.For(out, branding.DisplayName()+" - "+branding.Description()))
		fmt.Fprintln(out)
		answers, err = prompt.Ask(prompt.New(cmd.InOrStdin(), out), in)
		if err != nil {
			return err
		}
	}

	tmpl, err := templateSource(firstNonEmpty(createTemplateDir, settings.TemplateDir))
	if err != nil {
		return err
	}
	env, err := loadEnv(firstNonEmpty(createEnvFile, settings.EnvFile))
	if err != nil {
		return err
	}
	for _, e := range envfile.Entries(env) {
		log.Debug().Str("key", e.Key).Str("value", envfile.RedactValue(e.Key, e.Value)).Msg("template env")
	}
	sourceDir := ""
	if createSourceDir != "" {
		if sourceDir, err = filepath.Abs(createSourceDir); err != nil {
			return fmt.Errorf("resolving --source-dir: %w", err)
		}
	}

	pm := pkgmanager.FromEnv()
	res, err := scaffold.Run(cmd.Context(), scaffold.Options{
		FS:                 in.FS,
		Cwd:                cwd,
		TargetDir:          answers.TargetDir,
		PackageName:        answers.PackageName,
		DefaultProjectName: defaultName,
		GeneratorPrefix:    branding.GeneratorPrefix(),
		GitHubUser:         answers.GitHubUser,
		GitHubScope:        answers.GitHubScope,
		GitHubHost:         branding.GitHubHost(),
		Overwrite:          answers.Overwrite,
		Features:           feats,
		Env:                env,
		Template:           tmpl,
		Bin:                assets.Bin(),
		SourceDir:          sourceDir,
		Conventions:        convention.Default(),
		PackageManager:     pm,
		GitInit:            createGitInit,
		Logger:             logging.GetLogger("scaffold"),
		Out:                out,
	})
	if err != nil {
		return err
	}

	for _, w := range res.Warnings {
		pterm.Warning.WithWriter(cmd.ErrOrStderr()).Println(w)
	}
	printNextSteps(out, scaffold.Instructions(cwd, res.Root, pm))
	return nil
}

func printNextSteps(w io.Writer, lines []string) {
	fmt.Fprint(w, "\nDone. Now run:\n\n")
	for _, line := range lines {
		fmt.Fprintf(w, "  %s\n", pterm.Bold.Sprint(line))
	}
	fmt.Fprintln(w)
}

// templateSource returns the bundled template, or dir when one is given.
func templateSource(dir string) (fs.FS, error) {
	if dir == "" {
		return assets.Template(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

func loadEnv(path string) (map[string]string, error) {
	if path != "" {
		return envfile.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}
	env, err := envfile.Parse(bytes.NewReader(assets.DefaultEnv()))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", assets.DefaultEnvName, err)
	}
	return env, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
