package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tormodhaugland/scriptnav/internal/launch"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if jsonOut {
			return outputJSON(cmd.OutOrStdout(), cfg)
		}

		template, err := launch.ParseTemplate(cfg.Launcher.Command)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "root:     %s\n", cfg.Root)
		fmt.Fprintf(out, "suffix:   %s\n", cfg.Suffix)
		fmt.Fprintf(out, "ignore:   %s\n", strings.Join(cfg.IgnoreDirs, ", "))
		fmt.Fprintf(out, "launcher: %s\n", strings.Join(template, " "))
		fmt.Fprintln(out, "units:")
		for _, u := range cfg.Units {
			fmt.Fprintf(out, "  %s  %s (%s)\n", u.Key, u.Label, cfg.UnitPath(u))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
