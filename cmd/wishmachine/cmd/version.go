package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/wishmachine/internal/version"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show detailed version information for wishmachine.

Displays the current version, commit hash, build date,
and Go/platform information.

Examples:
  wishmachine version           # Show detailed version info
  wishmachine version --short   # One line
  wishmachine version --json    # Machine-readable`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.NewInfo(Version, Commit, Date)
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			if short, _ := cmd.Flags().GetBool("short"); short {
				cmd.Println(info.String())
				return nil
			}
			cmd.Println(info.FullString())
			return nil
		},
	}
	cmd.Flags().BoolP("short", "s", false, "Print a single line")
	cmd.Flags().Bool("json", false, "Print as JSON")
	return cmd
}
