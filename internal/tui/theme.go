package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Icons prefix menu lines and messages.
type Icons struct {
	Menu   string
	Folder string
	Script string
	Run    string
	Back   string
	Exit   string
	Info   string
	Error  string
}

var EmojiIcons = Icons{
	Menu:   "📘",
	Folder: "📁",
	Script: "🐍",
	Run:    "▶",
	Back:   "↩",
	Exit:   "❌",
	Info:   "ℹ",
	Error:  "⚠",
}

var ASCIIIcons = Icons{
	Menu:   "#",
	Folder: "+",
	Script: "*",
	Run:    ">",
	Back:   "<",
	Exit:   "x",
	Info:   "i",
	Error:  "!",
}

const bannerWidth = 60

// Theme formats navigator output. It carries no state besides its styles.
type Theme struct {
	Icons Icons

	title   lipgloss.Style
	option  lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	success lipgloss.Style
}

// NewTheme returns the colored theme, detecting color support from w.
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w, termenv.WithColorCache(true))
	return Theme{
		Icons:   EmojiIcons,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		option:  r.NewStyle().Foreground(lipgloss.Color("10")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// PlainTheme renders without colors and with ASCII icons.
func PlainTheme() Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return Theme{
		Icons:   ASCIIIcons,
		title:   r.NewStyle(),
		option:  r.NewStyle(),
		warning: r.NewStyle(),
		failure: r.NewStyle(),
		success: r.NewStyle(),
	}
}

// Title renders a centered banner.
func (t Theme) Title(text string) string {
	rule := strings.Repeat("═", bannerWidth)
	heading := lipgloss.PlaceHorizontal(bannerWidth, lipgloss.Center, t.Icons.Menu+" "+text)
	return t.title.Render(rule) + "\n" +
		t.title.Render(strings.TrimRight(heading, " ")) + "\n" +
		t.title.Render(rule)
}

// Option renders one selectable line: "<icon> <key> - <label>".
func (t Theme) Option(icon, key, label string) string {
	return fmt.Sprintf("%s %s - %s", icon, t.option.Render(key), label)
}

func (t Theme) Info(text string) string {
	return t.warning.Render(t.Icons.Info + " " + text)
}

func (t Theme) Warning(text string) string {
	return t.warning.Render(t.Icons.Error + " " + text)
}

func (t Theme) Error(text string) string {
	return t.failure.Render(t.Icons.Error + " " + text)
}

func (t Theme) Success(text string) string {
	return t.success.Render(t.Icons.Run + " " + text)
}
