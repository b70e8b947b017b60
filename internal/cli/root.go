package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/xx-labs/create-xx/internal/branding"
	"github.com/xx-labs/create-xx/internal/config"
	"github.com/xx-labs/create-xx/internal/logging"
	"github.com/xx-labs/create-xx/internal/prompt"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbosity int
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [target-dir]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a new project from a bundled template, fills in its
package.json and renders its template files with the chosen features.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetupLoggerTo(cmd.ErrOrStderr(), verbosity)
		config.Load()
	},
	RunE: runCreate,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase diagnostic output (-v info, -vv debug, -vvv trace)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func execute(args []string, in io.Reader, out, errOut io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.Execute()
	if err != nil {
		reportError(out, errOut, err)
	}
	return err
}

// reportError prints the cancel line on out and anything else on errOut.
func reportError(out, errOut io.Writer, err error) {
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(out, pterm.FgRed.Sprint("✖")+" Operation cancelled")
		return
	}
	pterm.Error.WithWriter(errOut).Println(err.Error())
}
