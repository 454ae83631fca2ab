// Package cmd provides the CLI commands for wishmachine.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wexinc/wishmachine/internal/api"
	"github.com/wexinc/wishmachine/internal/config"
	wisherrors "github.com/wexinc/wishmachine/internal/errors"
	"github.com/wexinc/wishmachine/internal/logging"
	"github.com/wexinc/wishmachine/internal/version"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	apiURL     string
	verbose    bool
}

// newRootCmd builds the full command tree. A fresh tree per call keeps flag
// state from leaking between runs.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "wishmachine",
		Short: "魔法小狗许愿机 - make a wish from your terminal",
		Long: `wishmachine is a terminal client for the wish API.

Run it without a subcommand to open the wish machine: type a wish, send it
into the starry sky, and browse or delete the wishes already made.

The headless subcommands do the same from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// With no subcommand, start the TUI (same as "wishmachine run").
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
	root.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	root.SetVersionTemplate("wishmachine {{.Version}}\n")

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $HOME/.wishmachine/config.yaml)")
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "Wish API base URL (overrides config and environment)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newRunCmd(opts),
		newSendCmd(opts),
		newListCmd(opts),
		newShowCmd(opts),
		newDeleteCmd(opts),
		newPingCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	_ = logging.CloseGlobal()
	if err != nil {
		fmt.Fprint(os.Stderr, wisherrors.FormatError(err))
		os.Exit(1)
	}
}

// Root returns a fresh root command for testing purposes.
func Root() *cobra.Command {
	return newRootCmd()
}

// load resolves the configuration: defaults, then the config file, then
// WISHMACHINE_ environment variables (including .env), then flags.
func (o *rootOptions) load() (*config.Config, string, error) {
	loader := config.NewLoader()
	if o.apiURL != "" {
		loader.Set("api.base_url", o.apiURL)
	}
	if o.verbose {
		loader.Set("log.level", string(config.LogLevelDebug))
	}
	cfg, err := loader.LoadConfig(o.configPath)
	if err != nil {
		return nil, "", err
	}
	if cfg.API.UserAgent == config.DefaultUserAgent {
		cfg.API.UserAgent = version.NewInfo(Version, Commit, Date).UserAgent()
	}
	return cfg, loader.ConfigFileUsed(), nil
}

// setup loads the configuration and starts file logging. console mirrors
// log lines to stderr when --verbose is set; the TUI never does.
func (o *rootOptions) setup(cmd *cobra.Command, console bool) (*config.Config, error) {
	cfg, file, err := o.load()
	if err != nil {
		return nil, err
	}

	level, ok := logging.ParseLevel(string(cfg.Log.Level))
	if !ok {
		level = logging.LevelInfo
	}
	logConfig := &logging.Config{
		Level:       level,
		LogDir:      cfg.Log.Dir,
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
		Console:     console && o.verbose,
		JSONFormat:  cfg.Log.JSON,
	}
	if err := logging.InitGlobal(logConfig); err != nil {
		// Non-fatal: continue without file logging.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	} else {
		logging.Info("wishmachine starting",
			"version", Version,
			"command", cmd.Name(),
			"base_url", cfg.API.BaseURL,
			"config_file", file,
		)
	}
	return cfg, nil
}

// client builds an API client for cfg.
func client(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.API)
}

// commandContext returns the command's context, or Background when run
// without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
