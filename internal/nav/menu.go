package nav

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/tormodhaugland/scriptnav/internal/fs"
)

// menu is the state of one selection loop. choices is fixed for as long as
// the loop shows the same menu.
type menu struct {
	level   Level
	title   string
	icon    string
	choices []Choice
	// indexed menus select by 1-based position; the unit menu selects by key.
	indexed bool
	back    string
	root    bool
	label   string
	// notice is shown under the title, e.g. when listing failed.
	notice  string
}

func (n *Navigator) unitMenu() menu {
	choices := make([]Choice, 0, len(n.units))
	for _, u := range n.units {
		choices = append(choices, Choice{
			Key:    u.Key,
			Label:  u.Label,
			Target: filepath.Join(n.root, u.DirName()),
		})
	}

	return menu{
		level:   LevelUnit,
		title:   "Script Dashboard",
		icon:    n.theme.Icons.Folder,
		choices: choices,
		back:    n.theme.Icons.Exit + " " + BackInput + " - Exit",
		label:   "\nSelect an option: ",
	}
}

// listMenu builds a folder or script menu from the directory at path.
func (n *Navigator) listMenu(level Level, path string) menu {
	m := menu{
		level:   level,
		indexed: true,
		back:    n.theme.Icons.Back + " " + BackInput + " - Back",
	}

	keep := fs.IsDir(n.ignoreDirs...)
	switch level {
	case LevelFolder:
		m.title = "Select a Folder"
		m.icon = n.theme.Icons.Folder
		m.label = "\nSelect a folder: "
	case LevelScript:
		m.title = "Available Scripts"
		m.icon = n.theme.Icons.Script
		m.label = "\nSelect a script: "
		m.root = true
		keep = fs.HasSuffix(n.suffix)
	}

	names, err := fs.ListEntries(path, keep)
	if err != nil {
		n.logger.Warn("list failed", "level", level, "path", path, "err", err)
		m.notice = n.theme.Error(fmt.Sprintf("Could not list %s: %v", path, err))
		names = nil
	}

	m.choices = make([]Choice, 0, len(names))
	for i, name := range names {
		m.choices = append(m.choices, Choice{
			Key:    strconv.Itoa(i + 1),
			Label:  name,
			Target: filepath.Join(path, name),
		})
	}
	return m
}

func (n *Navigator) render(m menu) {
	n.screen.Clear()

	fmt.Fprintln(n.out, n.theme.Title(m.title))
	fmt.Fprintln(n.out)
	if m.notice != "" {
		fmt.Fprintln(n.out, m.notice)
		fmt.Fprintln(n.out)
	}
	for _, c := range m.choices {
		fmt.Fprintln(n.out, n.theme.Option(m.icon, c.Key, c.Label))
	}

	fmt.Fprintln(n.out)
	fmt.Fprintln(n.out, m.back)
	if m.root {
		fmt.Fprintln(n.out, n.theme.Icons.Menu+" "+RootInput+" - Main menu")
	}
}

// choose shows m until the user picks a choice or a sentinel. Invalid input
// is reported and m is shown again unchanged.
func (n *Navigator) choose(ctx context.Context, m menu) (Choice, Signal, error) {
	for {
		n.render(m)

		input, err := n.prompter.Prompt(ctx, m.label)
		if err != nil {
			sig, err := n.inputEnded(err)
			return Choice{}, sig, err
		}

		switch {
		case input == BackInput:
			if m.level == LevelUnit {
				return Choice{}, Exit, nil
			}
			return Choice{}, Back, nil
		case m.root && input == RootInput:
			return Choice{}, ToRoot, nil
		}

		choice, err := m.resolve(input)
		if err == nil {
			n.logger.Debug("selected", "level", m.level, "choice", choice.Label)
			return choice, Continue, nil
		}

		n.logger.Debug("invalid selection", "level", m.level, "input", input)
		fmt.Fprintln(n.out, n.theme.Error("Invalid selection."))
		if sig, err := n.wait(ctx); err != nil || sig == Exit {
			return Choice{}, Exit, err
		}
	}
}

func (m menu) resolve(input string) (Choice, error) {
	if m.indexed {
		i, err := strconv.Atoi(input)
		if err != nil || i < 1 || i > len(m.choices) {
			return Choice{}, fmt.Errorf("%w: %q", ErrInvalidSelection, input)
		}
		return m.choices[i-1], nil
	}

	for _, c := range m.choices {
		if c.Key == input {
			return c, nil
		}
	}
	return Choice{}, fmt.Errorf("%w: %q", ErrInvalidSelection, input)
}
