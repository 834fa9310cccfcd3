// Package nav implements the interactive menu navigator.
//
// Navigation is three nested selection loops: units, folders inside a unit,
// and scripts inside a folder. Each loop returns a Signal telling its parent
// what to do next, so a "back to main menu" from the script level unwinds
// the folder loop without any special casing in the unit loop.
//
// Input handling per loop:
//   - "0" leaves the loop (at the unit level this exits the navigator)
//   - "9" at the script level returns to the unit menu
//   - anything else must select one of the listed choices, otherwise an
//     invalid selection is reported and the same choices are shown again
//
// Folder and script lists are read from disk each time a level is entered.
package nav

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/tormodhaugland/scriptnav/internal/config"
	"github.com/tormodhaugland/scriptnav/internal/fs"
	"github.com/tormodhaugland/scriptnav/internal/launch"
	"github.com/tormodhaugland/scriptnav/internal/tui"
)

// Reserved inputs.
const (
	BackInput    = "0"
	RootInput    = "9"
	ConfirmInput = "1"
)

// ErrInvalidSelection is reported when input matches no choice.
var ErrInvalidSelection = errors.New("invalid selection")

// Signal is the outcome of one selection loop.
type Signal int

const (
	// Continue means a choice was selected and the caller proceeds with it.
	Continue Signal = iota
	// Back returns to the parent loop.
	Back
	// ToRoot unwinds to the unit loop.
	ToRoot
	// Exit ends the navigator.
	Exit
)

func (s Signal) String() string {
	switch s {
	case Continue:
		return "continue"
	case Back:
		return "back"
	case ToRoot:
		return "root"
	case Exit:
		return "exit"
	default:
		return "signal(" + strconv.Itoa(int(s)) + ")"
	}
}

// Level identifies a selection loop.
type Level int

const (
	LevelUnit Level = iota
	LevelFolder
	LevelScript
)

func (l Level) String() string {
	switch l {
	case LevelUnit:
		return "unit"
	case LevelFolder:
		return "folder"
	case LevelScript:
		return "script"
	default:
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
}

// Choice is one selectable entry. Key is the input that selects it.
type Choice struct {
	Key    string
	Label  string
	Target string
}

// Prompter reads one line of user input after showing label.
type Prompter interface {
	Prompt(ctx context.Context, label string) (string, error)
}

// Screen clears the display before a menu is drawn.
type Screen interface {
	Clear()
}

// Highlighter renders script content for display. name is the file name.
type Highlighter interface {
	Render(content, name string) string
}

type noScreen struct{}

func (noScreen) Clear() {}

// Options configures a Navigator. Root, Units, Suffix, Prompter, Launcher
// and Out are required.
type Options struct {
	Root   string
	Units  []config.Unit
	Suffix string
	// IgnoreDirs are subdirectory names not offered as folders.
	IgnoreDirs []string
	Prompter   Prompter
	Launcher   launch.Launcher
	Out        io.Writer

	Theme       *tui.Theme
	Screen      Screen
	Highlighter Highlighter
	Logger      *log.Logger

	// Pause waits for Enter after messages so they survive the next clear.
	Pause bool
}

// Navigator runs the menu state machine.
type Navigator struct {
	root       string
	units      []config.Unit
	suffix     string
	ignoreDirs []string
	prompter   Prompter
	launcher   launch.Launcher
	out        io.Writer

	theme       tui.Theme
	screen      Screen
	highlighter Highlighter
	logger      *log.Logger
	pause       bool
}

func New(opts Options) (*Navigator, error) {
	if opts.Prompter == nil {
		return nil, errors.New("nav: prompter is required")
	}
	if opts.Launcher == nil {
		return nil, errors.New("nav: launcher is required")
	}
	if opts.Out == nil {
		return nil, errors.New("nav: output is required")
	}
	if opts.Suffix == "" {
		return nil, errors.New("nav: script suffix is required")
	}

	n := &Navigator{
		root:        opts.Root,
		units:       append([]config.Unit{}, opts.Units...),
		suffix:      opts.Suffix,
		ignoreDirs:  append([]string{}, opts.IgnoreDirs...),
		prompter:    opts.Prompter,
		launcher:    opts.Launcher,
		out:         opts.Out,
		screen:      opts.Screen,
		highlighter: opts.Highlighter,
		logger:      opts.Logger,
		pause:       opts.Pause,
	}
	if opts.Theme != nil {
		n.theme = *opts.Theme
	} else {
		n.theme = tui.PlainTheme()
	}
	if n.screen == nil {
		n.screen = noScreen{}
	}
	if n.logger == nil {
		n.logger = log.New(io.Discard)
	}
	return n, nil
}

// Run drives the navigator until the user exits from the unit menu or
// input ends. It returns an error only if ctx is cancelled or input fails.
func (n *Navigator) Run(ctx context.Context) error {
	n.logger.Debug("navigator started", "root", n.root, "units", len(n.units))

	units := n.unitMenu()
	for {
		choice, sig, err := n.choose(ctx, units)
		if err != nil {
			return err
		}
		if sig != Continue {
			n.logger.Debug("navigator finished", "signal", sig)
			return nil
		}

		sig, err = n.folderLoop(ctx, choice)
		if err != nil {
			return err
		}
		if sig == Exit {
			n.logger.Debug("navigator finished", "signal", sig)
			return nil
		}
	}
}

func (n *Navigator) folderLoop(ctx context.Context, unit Choice) (Signal, error) {
	n.logger.Debug("entering level", "level", LevelFolder, "path", unit.Target)

	for {
		folders := n.listMenu(LevelFolder, unit.Target)

		choice, sig, err := n.choose(ctx, folders)
		if err != nil {
			return Exit, err
		}
		if sig != Continue {
			return sig, nil
		}

		sig, err = n.scriptLoop(ctx, choice)
		if err != nil {
			return Exit, err
		}
		if sig == Exit || sig == ToRoot {
			return sig, nil
		}
	}
}

func (n *Navigator) scriptLoop(ctx context.Context, folder Choice) (Signal, error) {
	n.logger.Debug("entering level", "level", LevelScript, "path", folder.Target)

	scripts := n.listMenu(LevelScript, folder.Target)
	for {
		choice, sig, err := n.choose(ctx, scripts)
		if err != nil {
			return Exit, err
		}
		if sig != Continue {
			return sig, nil
		}

		sig, err = n.openScript(ctx, choice)
		if err != nil {
			return Exit, err
		}
		if sig == Exit {
			return sig, nil
		}
	}
}

// openScript shows the script and offers to run it.
func (n *Navigator) openScript(ctx context.Context, script Choice) (Signal, error) {
	content, err := fs.ReadText(script.Target)
	if err != nil {
		n.reportReadError(script, err)
		return n.wait(ctx)
	}

	fmt.Fprintln(n.out)
	fmt.Fprintln(n.out, n.theme.Info("Script contents: "+script.Label))
	fmt.Fprintln(n.out)
	if n.highlighter != nil {
		fmt.Fprintln(n.out, n.highlighter.Render(content, script.Label))
	} else {
		fmt.Fprintln(n.out, content)
	}

	answer, err := n.prompter.Prompt(ctx, "\nRun this script? (1 = Yes | 0 = No): ")
	if err != nil {
		return n.inputEnded(err)
	}
	if answer == ConfirmInput {
		n.runScript(ctx, script)
	}

	return n.wait(ctx)
}

func (n *Navigator) runScript(ctx context.Context, script Choice) {
	fmt.Fprintln(n.out, n.theme.Success("Running "+script.Label+"..."))
	n.logger.Debug("launching script", "path", script.Target)

	if err := n.launcher.Launch(ctx, script.Target); err != nil {
		n.logger.Warn("launch failed", "path", script.Target, "err", err)
		fmt.Fprintln(n.out, n.theme.Error(fmt.Sprintf("Could not run script: %v", err)))
	}
}

func (n *Navigator) reportReadError(script Choice, err error) {
	n.logger.Warn("read failed", "path", script.Target, "err", err)

	var readErr *fs.ReadError
	switch {
	case errors.Is(err, fs.ErrNotFound):
		fmt.Fprintln(n.out, n.theme.Error("File not found: "+script.Label))
	case errors.As(err, &readErr):
		fmt.Fprintln(n.out, n.theme.Error(fmt.Sprintf("Could not read script: %v", readErr.Err)))
	default:
		fmt.Fprintln(n.out, n.theme.Error(fmt.Sprintf("Could not read script: %v", err)))
	}
}

// wait holds the screen until Enter when pausing is enabled.
func (n *Navigator) wait(ctx context.Context) (Signal, error) {
	if !n.pause {
		return Continue, nil
	}
	if _, err := n.prompter.Prompt(ctx, "\nPress Enter to continue..."); err != nil {
		return n.inputEnded(err)
	}
	return Continue, nil
}

// inputEnded maps prompt errors: exhausted or aborted input ends the
// navigator cleanly, anything else is returned.
func (n *Navigator) inputEnded(err error) (Signal, error) {
	if errors.Is(err, io.EOF) || errors.Is(err, tui.ErrAborted) {
		n.logger.Debug("input closed")
		return Exit, nil
	}
	return Exit, err
}
