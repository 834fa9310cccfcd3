package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/tormodhaugland/scriptnav/internal/config"
	"github.com/tormodhaugland/scriptnav/internal/fs"
)

// scriptRef locates one script in the tree.
type scriptRef struct {
	Unit   string `json:"unit"`
	Folder string `json:"folder"`
	Script string `json:"script"`
	Path   string `json:"path"`
}

func (r scriptRef) Display() string {
	return filepath.ToSlash(filepath.Join(r.Unit, r.Folder, r.Script))
}

func resolveUnit(cfg *config.Config, ref string) (config.Unit, error) {
	u, ok := cfg.FindUnit(ref)
	if !ok {
		return config.Unit{}, fmt.Errorf("unit not found: %s", ref)
	}
	return u, nil
}

// resolveEntry finds an entry of dir by 1-based menu number or by name.
func resolveEntry(dir string, keep fs.Predicate, ref string) (string, error) {
	names, err := fs.ListEntries(dir, keep)
	if err != nil {
		return "", err
	}

	for _, name := range names {
		if name == ref {
			return name, nil
		}
	}
	if i, err := strconv.Atoi(ref); err == nil && i >= 1 && i <= len(names) {
		return names[i-1], nil
	}
	return "", fmt.Errorf("%s not found in %s", ref, dir)
}

// resolveScript resolves unit, folder and script references to a path.
func resolveScript(cfg *config.Config, unitRef, folderRef, scriptArg string) (string, error) {
	u, err := resolveUnit(cfg, unitRef)
	if err != nil {
		return "", err
	}
	unitPath := cfg.UnitPath(u)

	folder, err := resolveEntry(unitPath, cfg.FolderFilter(), folderRef)
	if err != nil {
		return "", fmt.Errorf("folder: %w", err)
	}
	folderPath := filepath.Join(unitPath, folder)

	script, err := resolveEntry(folderPath, fs.HasSuffix(cfg.Suffix), scriptArg)
	if err != nil {
		return "", fmt.Errorf("script: %w", err)
	}
	return filepath.Join(folderPath, script), nil
}

// collectScripts lists every script below the configured units, in menu
// order.
func collectScripts(cfg *config.Config) ([]scriptRef, error) {
	var refs []scriptRef
	for _, u := range cfg.Units {
		unitPath := cfg.UnitPath(u)
		folders, err := fs.ListEntries(unitPath, cfg.FolderFilter())
		if err != nil {
			return nil, err
		}
		for _, folder := range folders {
			folderPath := filepath.Join(unitPath, folder)
			scripts, err := fs.ListEntries(folderPath, fs.HasSuffix(cfg.Suffix))
			if err != nil {
				return nil, err
			}
			for _, script := range scripts {
				refs = append(refs, scriptRef{
					Unit:   u.DirName(),
					Folder: folder,
					Script: script,
					Path:   filepath.Join(folderPath, script),
				})
			}
		}
	}
	return refs, nil
}
