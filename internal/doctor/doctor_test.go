package doctor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tormodhaugland/scriptnav/internal/config"
)

func stubLookPath(t *testing.T, installed ...string) {
	t.Helper()
	orig := LookPath
	t.Cleanup(func() { LookPath = orig })
	LookPath = func(file string) (string, error) {
		for _, name := range installed {
			if name == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestCheck_HealthyTree(t *testing.T) {
	stubLookPath(t, "xterm")
	root := t.TempDir()
	for _, f := range []string{"Unit 1/Lab1/ex1.py", "Unit 2/Lab1/ex1.py", "Unit 2/Lab1/ex2.py"} {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("print(1)"), 0o644))
	}
	cfg := config.DefaultConfig()
	cfg.Root = root

	report, err := Check(cfg, []string{"xterm", "-e", "python3", "{path}"})
	require.NoError(t, err)

	assert.Empty(t, report.Findings)
	assert.False(t, report.HasErrors())
	assert.Equal(t, 2, report.Units)
	assert.Equal(t, 2, report.Folders)
	assert.Equal(t, 3, report.Scripts)
}

func TestCheck_IgnoredDirs(t *testing.T) {
	stubLookPath(t, "xterm")
	root := t.TempDir()
	for _, f := range []string{"Unit 1/build/ex1.py", "Unit 1/__pycache__/ex1.py", "Unit 2/Lab1/ex1.py"} {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("print(1)"), 0o644))
	}
	cfg := config.DefaultConfig()
	cfg.Root = root

	report, err := Check(cfg, []string{"xterm", "{path}"})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Folders)
	assert.Equal(t, 2, report.Scripts)

	cfg.IgnoreDirs = []string{"build", "__pycache__"}
	report, err = Check(cfg, []string{"xterm", "{path}"})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Folders)
	require.Len(t, report.Findings, 1)
	assert.Contains(t, report.Findings[0].Message, "no folders")
}

func TestCheck_Problems(t *testing.T) {
	stubLookPath(t)
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Unit 1", "Empty"), 0o755))
	cfg := config.DefaultConfig()
	cfg.Root = root

	report, err := Check(cfg, []string{"xterm", "{path}"})
	require.NoError(t, err)

	require.Len(t, report.Findings, 3)
	assert.Equal(t, SeverityWarning, report.Findings[0].Severity)
	assert.Equal(t, filepath.Join(root, "Unit 1", "Empty"), report.Findings[0].Path)
	assert.Equal(t, SeverityError, report.Findings[1].Severity)
	assert.Equal(t, filepath.Join(root, "Unit 2"), report.Findings[1].Path)
	assert.Contains(t, report.Findings[2].Message, "xterm")
	assert.True(t, report.HasErrors())
}

func TestCheck_MissingRoot(t *testing.T) {
	stubLookPath(t, "xterm")
	cfg := config.DefaultConfig()
	cfg.Root = filepath.Join(t.TempDir(), "missing")

	report, err := Check(cfg, []string{"xterm"})
	require.NoError(t, err)

	require.Len(t, report.Findings, 1)
	assert.Equal(t, "root directory does not exist", report.Findings[0].Message)
	assert.True(t, report.HasErrors())
}

func TestCheck_EmptyLauncher(t *testing.T) {
	stubLookPath(t)
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Unit 1", "Lab1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Unit 1", "Lab1", "a.py"), nil, 0o644))
	cfg := config.DefaultConfig()
	cfg.Root = root
	cfg.Units = cfg.Units[:1]

	report, err := Check(cfg, nil)
	require.NoError(t, err)

	require.Len(t, report.Findings, 1)
	assert.Equal(t, "launcher command is empty", report.Findings[0].Message)
}
