package cli

import (
	"fmt"

	"github.com/matthewgulliver/mogpack/internal/config"
	"github.com/matthewgulliver/mogpack/internal/style"
	"github.com/spf13/cobra"
)

var styleURLRef string

func init() {
	styleURLCmd.Flags().StringVar(&styleURLRef, "ref", "", "Git reference (branch, tag, commit) for the style file (default: configured default_ref, else \"main\")")
	styleCmd.AddCommand(styleURLCmd)
	rootCmd.AddCommand(styleCmd)
}

var styleCmd = &cobra.Command{
	Use:   "style",
	Short: "Inspect the bundle's nitpick style",
}

var styleURLCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the style URL for a git ref",
	Long: `Print the github:// URL that init would write into [tool.nitpick] for the
given git ref, without touching any file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := styleURLRef
		if ref == "" {
			config.Load()
			ref = config.DefaultRef()
		}
		if err := style.ValidateRef(ref); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), style.URL(ref))
		return nil
	},
}
