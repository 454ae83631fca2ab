package cmd

import (
	"time"

	"github.com/spf13/cobra"

	wisherrors "github.com/wexinc/wishmachine/internal/errors"
)

func newPingCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the wish server is up",
		Long: `Call the server health endpoint and report the result.

Examples:
  wishmachine ping
  wishmachine --api-url http://wishes.local:8000 ping`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.setup(cmd, true)
			if err != nil {
				return err
			}

			c := client(cfg)
			start := time.Now()
			health, err := c.Health(commandContext(cmd))
			if err != nil {
				return err
			}
			elapsed := time.Since(start).Round(time.Millisecond)

			if health.Status != "healthy" {
				return wisherrors.New(wisherrors.ErrAPI, "server reports status "+health.Status).
					WithDetails("url", c.BaseURL())
			}

			cmd.Printf("✓ %s is %s (%s)\n", c.BaseURL(), health.Status, elapsed)
			if health.Timestamp != "" {
				cmd.Printf("  Server time: %s\n", health.Timestamp)
			}
			return nil
		},
	}
}
