// Package cli wires configuration, logging and the catalog into the
// bookshelf commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bookshelf/internal/config"
	"bookshelf/internal/logging"
)

// Version is set by main
var Version = "dev"

// rootOptions holds the persistent flags
type rootOptions struct {
	configPath string
	catalog    string
	pageSize   int
	logLevel   string
}

// runtime is what every command needs once flags are parsed
type runtime struct {
	cfg       *config.Config
	hadConfig bool
	logger    *zap.Logger
	cleanup   func()
}

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the interactive browser.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	rt := &runtime{cleanup: func() {}}

	cmd := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Browse a book catalog in the terminal",
		Long:          "bookshelf loads a JSON book catalog once and lets you search it,\nfilter it by country, language, length and century, and page through the results.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer rt.cleanup()
			return runTUI(cmd.Context(), rt)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/bookshelf/config.toml)")
	flags.StringVar(&opts.catalog, "catalog", "", "catalog file path or http(s) URL")
	flags.IntVar(&opts.pageSize, "page-size", 0, "initial page size (20, 50 or 100)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newListCommand(rt))

	return cmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setup loads the configuration and opens the log file. Flags override
// environment variables, which override the config file.
func (rt *runtime) setup(cmd *cobra.Command, opts *rootOptions) error {
	cfg, hadConfig, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogSource = opts.catalog
	}
	if flags.Changed("page-size") {
		cfg.UISettings.DefaultPageSize = opts.pageSize
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, cleanup, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	rt.cfg = cfg
	rt.hadConfig = hadConfig
	rt.logger = logger
	rt.cleanup = cleanup

	logger.Info("starting",
		zap.String("version", Version),
		zap.String("command", cmd.Name()),
		zap.String("catalog", cfg.CatalogSource),
		zap.Int("page_size", cfg.UISettings.DefaultPageSize))
	return nil
}

// loadConfig reads the config file and applies environment overrides. An
// explicit path must exist; the default path is created on first run.
func loadConfig(path string) (*config.Config, bool, error) {
	if path == "" {
		svc := config.NewConfigService()
		_, statErr := os.Stat(svc.Path())
		cfg, err := svc.Load()
		if err != nil {
			return nil, false, err
		}
		return cfg, statErr == nil, nil
	}

	cfg, err := config.NewConfigServiceAt(path).LoadFromPath(path)
	if err != nil {
		return nil, false, err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// isInterrupt reports whether err only reflects a cancelled context
func isInterrupt(ctx context.Context, err error) bool {
	return ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, ctx.Err()))
}
