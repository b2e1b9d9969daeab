package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matthewgulliver/mogpack/internal/branding"
	"github.com/matthewgulliver/mogpack/internal/pyproject"
	"github.com/matthewgulliver/mogpack/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	checkTools    bool
	checkManifest bool
	doctorPath    string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkTools, "check-tools", false, "Verify bundle tools are installed and recent enough")
	doctorCmd.Flags().BoolVar(&checkManifest, "check-manifest", false, "Validate the [tool.nitpick] table in pyproject.toml")
	doctorCmd.Flags().StringVar(&doctorPath, "path", "", "Project directory containing pyproject.toml (default: current directory)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the mogpack tooling bundle",
	Long: `Run diagnostic checks: verify that the bundle's tools (nitpick, ruff, mypy,
pytest) are on PATH and meet their minimum versions, and that the project's
[tool.nitpick] table has the expected shape. Doctor never edits files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := doctorPath
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			dir = cwd
		}

		// If no specific flag, run all checks.
		all := !checkTools && !checkManifest

		out := cmd.OutOrStdout()
		problems := 0
		if checkTools || all {
			problems += toolchain.Check(out, toolchain.Bundle())
		}
		if checkManifest || all {
			problems += runManifestCheck(out, dir)
		}

		if problems > 0 {
			return fmt.Errorf("%d problem(s) found", problems)
		}
		return nil
	},
}

// runManifestCheck validates the project's [tool.nitpick] table and returns
// the number of problems found.
func runManifestCheck(w io.Writer, dir string) int {
	fmt.Fprintln(w, "Manifest check:")

	m, err := pyproject.Load(dir)
	if err != nil {
		if errors.Is(err, pyproject.ErrManifestNotFound) {
			fmt.Fprintf(w, "  [MISS] no %s in %s\n", pyproject.FileName, dir)
		} else {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
		}
		return 1
	}

	table := m.NitpickTable()
	if table == nil {
		fmt.Fprintf(w, "  [MISS] no [tool.nitpick] table in %s\n", m.Path)
		fmt.Fprintf(w, "         Run '%s init' to add one\n", branding.CLIName())
		return 1
	}

	res, err := pyproject.ValidateTable(table)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] validating [tool.nitpick]: %v\n", err)
		return 1
	}
	if res.Valid {
		fmt.Fprintf(w, "  [ OK ] [tool.nitpick] in %s is well-formed\n", m.Path)
		return 0
	}

	for _, issue := range res.Issues {
		fmt.Fprintf(w, "  [FAIL] [tool.nitpick]%s: %s\n", issue.Path, issue.Message)
	}
	return len(res.Issues)
}
