// Package doctor checks that the script tree and launcher are usable.
package doctor

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/tormodhaugland/scriptnav/internal/config"
	"github.com/tormodhaugland/scriptnav/internal/fs"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type Finding struct {
	Severity Severity `json:"severity"`
	Path     string   `json:"path,omitempty"`
	Message  string   `json:"message"`
}

type Report struct {
	Root     string    `json:"root"`
	Units    int       `json:"units"`
	Folders  int       `json:"folders"`
	Scripts  int       `json:"scripts"`
	Findings []Finding `json:"findings"`
}

func (r *Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r *Report) add(severity Severity, path, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity: severity,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

// LookPath finds launcher binaries; replaced in tests.
var LookPath = exec.LookPath

// Check walks the configured tree and reports missing directories, folders
// without scripts, and a launcher binary that is not installed.
func Check(cfg *config.Config, launcher []string) (*Report, error) {
	report := &Report{
		Root:     cfg.Root,
		Findings: make([]Finding, 0),
	}

	if !fs.DirExists(cfg.Root) {
		report.add(SeverityError, cfg.Root, "root directory does not exist")
		return report, nil
	}

	for _, u := range cfg.Units {
		unitPath := cfg.UnitPath(u)
		if !fs.DirExists(unitPath) {
			report.add(SeverityError, unitPath, "unit %q has no directory", u.Label)
			continue
		}
		report.Units++

		folders, err := fs.ListEntries(unitPath, cfg.FolderFilter())
		if err != nil {
			return nil, err
		}
		if len(folders) == 0 {
			report.add(SeverityWarning, unitPath, "unit %q has no folders", u.Label)
		}

		for _, folder := range folders {
			report.Folders++
			folderPath := filepath.Join(unitPath, folder)
			scripts, err := fs.ListEntries(folderPath, fs.HasSuffix(cfg.Suffix))
			if err != nil {
				return nil, err
			}
			if len(scripts) == 0 {
				report.add(SeverityWarning, folderPath, "folder has no %s scripts", cfg.Suffix)
			}
			report.Scripts += len(scripts)
		}
	}

	if len(launcher) == 0 {
		report.add(SeverityError, "", "launcher command is empty")
	} else if _, err := LookPath(launcher[0]); err != nil {
		report.add(SeverityError, "", "launcher %q is not installed", launcher[0])
	}

	return report, nil
}
