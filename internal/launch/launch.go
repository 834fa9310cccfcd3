// Package launch starts scripts in a new, independent terminal window.
//
// Launching is fire-and-forget: the child process is started, its handle is
// released, and nothing about its exit status or output is observed.
package launch

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/shlex"
)

// Launcher starts the script at path without waiting for it.
type Launcher interface {
	Launch(ctx context.Context, path string) error
}

// Func adapts a plain function to Launcher.
type Func func(ctx context.Context, path string) error

func (f Func) Launch(ctx context.Context, path string) error {
	return f(ctx, path)
}

// LaunchError reports that the process could not be spawned.
type LaunchError struct {
	Path string
	Argv []string
	Err  error
}

func (e *LaunchError) Error() string {
	if len(e.Argv) == 0 {
		return fmt.Sprintf("launch %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("launch %s with %s: %v", e.Path, e.Argv[0], e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

var ErrEmptyCommand = errors.New("launch command is empty")

// Placeholders substituted in each template argument.
const (
	PathPlaceholder = "{path}"
	DirPlaceholder  = "{dir}"
	NamePlaceholder = "{name}"
)

// DefaultTemplate returns the terminal command used for goos when no
// command is configured.
func DefaultTemplate(goos string) []string {
	switch goos {
	case "windows":
		return []string{"cmd", "/c", "start", "cmd", "/k", "python", PathPlaceholder}
	case "darwin":
		// Terminal.app only runs shell commands, so the script is handed to
		// python3 through AppleScript. The path travels as argv, unquoted.
		return []string{
			"osascript",
			"-e", "on run argv",
			"-e", `tell application "Terminal" to do script "python3 " & quoted form of item 1 of argv`,
			"-e", "end run",
			PathPlaceholder,
		}
	default:
		return []string{"xterm", "-hold", "-e", "python3", PathPlaceholder}
	}
}

// ParseTemplate splits a shell-style command line into an argv template.
// An empty command selects the platform default.
func ParseTemplate(command string) ([]string, error) {
	if strings.TrimSpace(command) == "" {
		return DefaultTemplate(runtime.GOOS), nil
	}
	argv, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parse launch command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}
	return argv, nil
}

// Expand substitutes placeholders in template for the script at path. When
// no argument mentions a placeholder the path is appended.
func Expand(template []string, path string) []string {
	dir, name := filepath.Split(path)
	dir = filepath.Clean(dir)

	replacer := strings.NewReplacer(
		PathPlaceholder, path,
		DirPlaceholder, dir,
		NamePlaceholder, name,
	)

	argv := make([]string, 0, len(template)+1)
	substituted := false
	for _, arg := range template {
		expanded := replacer.Replace(arg)
		if expanded != arg {
			substituted = true
		}
		argv = append(argv, expanded)
	}
	if !substituted {
		argv = append(argv, path)
	}
	return argv
}

// Terminal launches scripts through a terminal command template.
type Terminal struct {
	template []string
	start    func(cmd *exec.Cmd) error
}

func NewTerminal(template []string) *Terminal {
	return &Terminal{
		template: append([]string{}, template...),
		start:    startDetached,
	}
}

// Command returns the argv that Launch would run for path.
func (t *Terminal) Command(path string) ([]string, error) {
	if len(t.template) == 0 {
		return nil, &LaunchError{Path: path, Err: ErrEmptyCommand}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &LaunchError{Path: path, Err: err}
	}
	return Expand(t.template, abs), nil
}

// Launch spawns the terminal command. The context is only checked before
// spawning; cancelling it later does not affect the child.
func (t *Terminal) Launch(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return &LaunchError{Path: path, Err: err}
	}

	argv, err := t.Command(path)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if abs, err := filepath.Abs(path); err == nil {
		cmd.Dir = filepath.Dir(abs)
	}

	if err := t.start(cmd); err != nil {
		return &LaunchError{Path: path, Argv: argv, Err: err}
	}
	return nil
}

func startDetached(cmd *exec.Cmd) error {
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
