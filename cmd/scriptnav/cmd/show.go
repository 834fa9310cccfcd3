package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tormodhaugland/scriptnav/internal/fs"
	"github.com/tormodhaugland/scriptnav/internal/tui"
)

var showHighlight bool

var showCmd = &cobra.Command{
	Use:   "show <unit> <folder> <script>",
	Short: "Print a script",
	Long:  `Prints the contents of a script. Folders and scripts may be given by name or menu number.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path, err := resolveScript(cfg, args[0], args[1], args[2])
		if err != nil {
			return err
		}

		content, err := fs.ReadText(path)
		if errors.Is(err, fs.ErrNotFound) {
			return fmt.Errorf("script not found: %s", path)
		}
		if err != nil {
			return err
		}

		if showHighlight || cfg.UI.Highlight {
			r, err := tui.NewCodeRenderer(codeWidth)
			if err != nil {
				newLogger(cfg).Warn("syntax highlighting disabled", "err", err)
			} else {
				content = r.Render(content, filepath.Base(path))
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showHighlight, "highlight", false, "syntax highlight the script")
	rootCmd.AddCommand(showCmd)
}
