package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tormodhaugland/scriptnav/internal/doctor"
	"github.com/tormodhaugland/scriptnav/internal/launch"
	"github.com/tormodhaugland/scriptnav/internal/tui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the script tree and launcher",
	Long: `Checks that the root and unit directories exist, reports folders
without scripts, and verifies that the launcher command is installed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		template, err := launch.ParseTemplate(cfg.Launcher.Command)
		if err != nil {
			return err
		}

		report, err := doctor.Check(cfg, template)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", cfg.Root, err)
		}

		if jsonOut {
			if err := outputJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
		} else {
			out := cmd.OutOrStdout()
			theme := tui.NewTheme(out)
			fmt.Fprintf(out, "Root: %s\n", report.Root)
			fmt.Fprintf(out, "Found %d unit(s), %d folder(s), %d script(s)\n", report.Units, report.Folders, report.Scripts)
			for _, f := range report.Findings {
				line := f.Message
				if f.Path != "" {
					line = f.Path + ": " + line
				}
				if f.Severity == doctor.SeverityError {
					fmt.Fprintln(out, theme.Error(line))
				} else {
					fmt.Fprintln(out, theme.Warning(line))
				}
			}
			if len(report.Findings) == 0 {
				fmt.Fprintln(out, theme.Success("Everything looks good"))
			}
		}

		if report.HasErrors() {
			return fmt.Errorf("doctor found problems")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
