package cli

import (
	"fmt"
	"os"

	"github.com/matthewgulliver/mogpack/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` bundles the development tooling conventions for Python projects:
strict type checking (mypy), fast linting (ruff), testing (pytest), and
configuration enforcement (nitpick) against a remotely hosted style file.

'` + branding.CLIName() + ` init' wires a project into the bundle by adding a [tool.nitpick]
table to its pyproject.toml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
