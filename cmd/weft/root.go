package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/weftlang/weft/internal/config"
	"github.com/weftlang/weft/internal/observability"
)

// Global flag values shared by all subcommands.
var (
	configFile   string
	verboseFlag  bool
	outputFormat string
)

// cfg is populated by loadConfig before any subcommand runs.
var cfg *config.Config

// logger is the CLI-wide slog logger, built from the loaded config.
var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "weft",
	Short: "Weft - string interpolation engine",
	Long: `Weft renders {{ ... }} interpolation templates against a data
context. Templates come from the command line, files, or a YAML
template registry.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command with signal handling
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// loadConfig is called before any command runs to load configuration
// and build the logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		path = os.Getenv("WEFT_CONFIG")
	}
	if path == "" {
		path = "weft.yaml"
	}

	loader := config.NewConfigLoader(config.NewConfigValidator())
	loaded, err := loader.LoadWithDefaults(path)
	if err != nil {
		return err
	}
	cfg = loaded

	level := observability.ParseLevel(cfg.Log.Level)
	if verboseFlag {
		level = slog.LevelDebug
	}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = observability.NewJSONHandler(cmd.ErrOrStderr(), level)
	} else {
		handler = observability.NewTextHandler(cmd.ErrOrStderr(), level)
	}
	logger = slog.New(handler)

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default weft.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text or json)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(registryCmd)
	rootCmd.AddCommand(versionCmd)
}
