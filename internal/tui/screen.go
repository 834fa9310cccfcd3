package tui

import (
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
)

const clearSequence = "\033[H\033[2J"

// Screen clears the terminal between menus. Clearing is skipped when the
// output is not a terminal.
type Screen struct {
	out     io.Writer
	enabled bool
}

type fdWriter interface {
	Fd() uintptr
}

func NewScreen(out io.Writer, enabled bool) *Screen {
	if enabled {
		enabled = IsTerminal(out)
	}
	return &Screen{out: out, enabled: enabled}
}

// IsTerminal reports whether w is backed by a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *Screen) Enabled() bool {
	return s.enabled
}

func (s *Screen) Clear() {
	if !s.enabled {
		return
	}
	fmt.Fprint(s.out, clearSequence)
}
