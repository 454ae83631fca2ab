package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/wishmachine/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		Long: `Manage the wishmachine configuration file.

Settings are resolved in this order, later wins:
  1. Built-in defaults
  2. $HOME/.wishmachine/config.yaml (or --config)
  3. WISHMACHINE_* environment variables, also read from ./.env
  4. Command-line flags such as --api-url`,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a config file holding every setting at its default value.

Use --force to overwrite an existing file.

Examples:
  wishmachine config init
  wishmachine config init --force
  wishmachine --config ./wishmachine.yaml config init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			path := opts.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}

			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			cmd.Printf("Created %s\n", path)
			cmd.Println("Edit it to point wishmachine at your wish server.")
			return nil
		},
	}
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, file, environment and
flags have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, file, err := opts.load()
			if err != nil {
				return err
			}

			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}

			if file != "" {
				cmd.Printf("# file: %s\n", file)
			} else {
				cmd.Println("# file: none (defaults and environment only)")
			}
			cmd.Print(string(data))
			return nil
		},
	}

	cfgCmd.AddCommand(initCmd, showCmd)
	return cfgCmd
}
