package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tormodhaugland/scriptnav/internal/config"
)

// Version is set at build time.
var Version = "dev"

var (
	cfgFile    string
	rootDir    string
	suffixFlag string
	jsonOut    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "scriptnav",
	Short: "Browse, read and run course scripts from the console",
	Long: `scriptnav is a console navigator for a tree of course scripts:

  <root>/<unit>/<folder>/<script>

Pick a unit, then a folder, then a script to read it. After reading a
script you can run it in a new terminal window.

Running 'scriptnav' without arguments starts the navigator.`,
	SilenceUsage: true,
	RunE:         runBrowse,
}

func Execute() error {
	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/scriptnav/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "directory containing the unit folders")
	rootCmd.PersistentFlags().StringVar(&suffixFlag, "suffix", "", "script file suffix (default: .py)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	addBrowseFlags(rootCmd)
}

// loadConfig loads the config file and applies the persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if rootDir != "" {
		abs, err := filepath.Abs(rootDir)
		if err != nil {
			return nil, fmt.Errorf("invalid root %s: %w", rootDir, err)
		}
		cfg.Root = abs
	}
	if suffixFlag != "" {
		cfg.Suffix = suffixFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.WarnLevel
	}
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          config.AppName,
		Level:           level,
		ReportTimestamp: verbose,
	})
}
