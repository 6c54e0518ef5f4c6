package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-notes/inkwell"
	"github.com/inkwell-notes/inkwell/internal/platform"
	"github.com/inkwell-notes/inkwell/pkg/gate"
)

var (
	verbose    bool
	rootDir    string
	configPath string
	assumeYes  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "A personal note vault backed by plain JSON files",
	Long: `Inkwell keeps every note as a single JSON record inside a Notes directory.
Records are written atomically, listed most-recent-first, and can be
exported as one shareable JSON array.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Storage root (default: config file, then platform default)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Assume storage access is granted, never prompt")
}

// loadConfig reads the CLI config file (missing file is fine).
func loadConfig() platform.FileConfig {
	cfg, err := platform.LoadConfig(configPath)
	if err != nil {
		slog.Default().Warn("ignoring unreadable config", "error", err)
	}
	return cfg
}

// newService wires a vault service from flags and config.
func newService(extra ...inkwell.Option) (*inkwell.Service, error) {
	cfg := loadConfig()

	root := rootDir
	if root == "" {
		root = cfg.Root
	}

	opts := []inkwell.Option{
		inkwell.WithLogger(slog.Default()),
	}
	if assumeYes {
		opts = append(opts, inkwell.WithEnvironment(gate.Granted()))
	}
	opts = append(opts, extra...)

	return inkwell.New(root, opts...)
}
