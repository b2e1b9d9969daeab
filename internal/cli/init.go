package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/matthewgulliver/mogpack/internal/branding"
	"github.com/matthewgulliver/mogpack/internal/config"
	"github.com/matthewgulliver/mogpack/internal/pyproject"
	"github.com/spf13/cobra"
)

var (
	initRef  string
	initPath string
)

func init() {
	initCmd.Flags().StringVar(&initRef, "ref", "", "Git reference (branch, tag, commit) for the style file (default: configured default_ref, else \"main\")")
	initCmd.Flags().StringVar(&initPath, "path", "", "Project directory containing pyproject.toml (default: current directory)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Add the mogpack nitpick configuration to a project",
	Long: `Add a [tool.nitpick] table to the project's pyproject.toml, pointing the
nitpick enforcement tool at the mogpack style file for the chosen git ref.

The manifest must already exist; init never creates one. If the table is
already present the manifest is left untouched and init exits successfully
with a warning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := initPath
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			dir = cwd
		}

		ref := initRef
		if ref == "" {
			config.Load()
			ref = config.DefaultRef()
		}

		res, err := pyproject.Init(dir, ref)
		if err != nil {
			if errors.Is(err, pyproject.ErrManifestNotFound) {
				return fmt.Errorf("%s not found in %s: run from your project root or pass --path", pyproject.FileName, dir)
			}
			return err
		}

		out := cmd.OutOrStdout()
		if !res.Added {
			fmt.Fprintf(out, "Warning: [tool.nitpick] section already exists in %s\n", res.ManifestPath)
			fmt.Fprintln(out, "Current configuration will be preserved")
			return nil
		}

		fmt.Fprintf(out, "Added %s configuration to %s\n", branding.CLIName(), res.ManifestPath)
		fmt.Fprintf(out, "  Style URL: %s\n", res.StyleURL)
		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintln(out, "  1. Run 'nitpick check' to see what needs to be configured")
		fmt.Fprintln(out, "  2. Run 'nitpick fix' to automatically apply configuration")
		fmt.Fprintf(out, "  3. Install %s as a dev dependency:\n", branding.CLIName())
		fmt.Fprintf(out, "     uv add --dev %s\n", branding.CLIName())
		return nil
	},
}
