package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tormodhaugland/scriptnav/internal/config"
	"github.com/tormodhaugland/scriptnav/internal/fs"
	"github.com/tormodhaugland/scriptnav/internal/launch"
	"github.com/tormodhaugland/scriptnav/internal/nav"
	"github.com/tormodhaugland/scriptnav/internal/tui"
)

const codeWidth = 100

var (
	browsePlain     bool
	browseHighlight bool
	browseTUI       bool
	browseNoClear   bool
	browseDryRun    bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Start the interactive navigator",
	Long: `Shows the unit menu. Enter the number next to an entry to open it,
0 to go back (or exit from the unit menu), and 9 in the script menu to
return to the unit menu.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func addBrowseFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&browsePlain, "plain", false, "disable colors and icons")
	cmd.Flags().BoolVar(&browseHighlight, "highlight", false, "syntax highlight script contents")
	cmd.Flags().BoolVar(&browseTUI, "tui", false, "use interactive text inputs for prompts")
	cmd.Flags().BoolVar(&browseNoClear, "no-clear", false, "do not clear the screen between menus")
	cmd.Flags().BoolVar(&browseDryRun, "dry-run", false, "print the launch command instead of running it")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyBrowseFlags(cfg)

	logger := newLogger(cfg)
	if !fs.DirExists(cfg.Root) {
		logger.Warn("root directory does not exist", "root", cfg.Root)
	}

	out := cmd.OutOrStdout()
	in := cmd.InOrStdin()

	launcher, err := newLauncher(cfg, out, browseDryRun)
	if err != nil {
		return err
	}

	theme := themeFor(cfg, out)
	screen := tui.NewScreen(out, cfg.UI.ClearScreen)

	var prompter nav.Prompter = tui.NewLinePrompter(in, out)
	if cfg.UI.TUIPrompts {
		prompter = tui.NewInputPrompter(in, out)
	}

	opts := nav.Options{
		Root:       cfg.Root,
		Units:      cfg.Units,
		Suffix:     cfg.Suffix,
		IgnoreDirs: cfg.IgnoreDirs,
		Prompter:   prompter,
		Launcher:   launcher,
		Out:        out,
		Theme:      &theme,
		Screen:     screen,
		Logger:     logger,
		Pause:      screen.Enabled(),
	}
	if cfg.UI.Highlight {
		if r, err := tui.NewCodeRenderer(codeWidth); err != nil {
			logger.Warn("syntax highlighting disabled", "err", err)
		} else {
			opts.Highlighter = r
		}
	}

	n, err := nav.New(opts)
	if err != nil {
		return err
	}
	return n.Run(cmd.Context())
}

func applyBrowseFlags(cfg *config.Config) {
	if browsePlain {
		cfg.UI.Plain = true
	}
	if browseHighlight {
		cfg.UI.Highlight = true
	}
	if browseTUI {
		cfg.UI.TUIPrompts = true
	}
	if browseNoClear {
		cfg.UI.ClearScreen = false
	}
}

func themeFor(cfg *config.Config, out io.Writer) tui.Theme {
	if cfg.UI.Plain {
		return tui.PlainTheme()
	}
	return tui.NewTheme(out)
}

// newLauncher returns the configured terminal launcher, or one that only
// prints the command when dryRun is set.
func newLauncher(cfg *config.Config, out io.Writer, dryRun bool) (launch.Launcher, error) {
	template, err := launch.ParseTemplate(cfg.Launcher.Command)
	if err != nil {
		return nil, err
	}
	term := launch.NewTerminal(template)
	if !dryRun {
		return term, nil
	}

	return launch.Func(func(ctx context.Context, path string) error {
		argv, err := term.Command(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "would run: %s\n", strings.Join(argv, " "))
		return nil
	}), nil
}

func init() {
	addBrowseFlags(browseCmd)
	rootCmd.AddCommand(browseCmd)
}
