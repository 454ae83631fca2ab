package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/wishmachine/internal/logging"
	"github.com/wexinc/wishmachine/internal/tui"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the wish machine",
		Long: `Open the interactive wish machine.

Type a wish and press Ctrl+S to send it. Press Tab to browse the wishes
already made, d to delete the selected one, and F1 for all shortcuts.

Examples:
  wishmachine run
  wishmachine --api-url http://wishes.local:8000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

// runTUI starts the Bubble Tea program against the configured backend.
func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.setup(cmd, false)
	if err != nil {
		return err
	}

	c := client(cfg)
	err = tui.Run(cfg, c, c.BaseURL())
	logging.Info("wishmachine exiting", "error", err)
	return err
}
