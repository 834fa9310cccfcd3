package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tormodhaugland/scriptnav/internal/fs"
)

var runDryRun bool

var runCmd = &cobra.Command{
	Use:   "run <unit> <folder> <script>",
	Short: "Run a script in a new terminal",
	Long: `Starts the script in a new terminal window and returns immediately.
The terminal command can be set with launcher.command in the config file.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path, err := resolveScript(cfg, args[0], args[1], args[2])
		if err != nil {
			return err
		}
		if _, err := fs.ReadText(path); err != nil {
			return fmt.Errorf("cannot run %s: %w", path, err)
		}

		launcher, err := newLauncher(cfg, cmd.OutOrStdout(), runDryRun)
		if err != nil {
			return err
		}

		newLogger(cfg).Debug("launching script", "path", path)
		return launcher.Launch(cmd.Context(), path)
	},
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "print the launch command instead of running it")
	rootCmd.AddCommand(runCmd)
}
