package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tormodhaugland/scriptnav/internal/config"
	"github.com/tormodhaugland/scriptnav/internal/fs"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	files := []string{
		"Unit 1/Lab1/ex1.py",
		"Unit 1/Lab1/ex2.py",
		"Unit 1/Lab2/loops.py",
		"Unit 2/Recursion/factorial.py",
		"Unit 2/Recursion/README.md",
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("print(1)\n"), 0644))
	}

	cfg := config.DefaultConfig()
	cfg.Root = root
	return cfg
}

func TestResolveEntry(t *testing.T) {
	cfg := testConfig(t)
	unitPath := filepath.Join(cfg.Root, "Unit 1")

	name, err := resolveEntry(unitPath, fs.IsDir(), "Lab2")
	require.NoError(t, err)
	assert.Equal(t, "Lab2", name)

	name, err = resolveEntry(unitPath, fs.IsDir(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Lab1", name)

	_, err = resolveEntry(unitPath, fs.IsDir(), "3")
	assert.Error(t, err)

	_, err = resolveEntry(unitPath, fs.IsDir(), "Lab9")
	assert.Error(t, err)
}

func TestResolveScript(t *testing.T) {
	cfg := testConfig(t)

	path, err := resolveScript(cfg, "Unit 2", "Recursion", "1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Root, "Unit 2", "Recursion", "factorial.py"), path)

	path, err = resolveScript(cfg, "1", "1", "ex2.py")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfg.Root, "Unit 1", "Lab1", "ex2.py"), path)

	_, err = resolveScript(cfg, "3", "1", "1")
	assert.Error(t, err)

	_, err = resolveScript(cfg, "2", "Recursion", "README.md")
	assert.Error(t, err)
}

func TestCollectScripts(t *testing.T) {
	cfg := testConfig(t)

	refs, err := collectScripts(cfg)
	require.NoError(t, err)

	var names []string
	for _, r := range refs {
		names = append(names, r.Display())
	}
	assert.Equal(t, []string{
		"Unit 1/Lab1/ex1.py",
		"Unit 1/Lab1/ex2.py",
		"Unit 1/Lab2/loops.py",
		"Unit 2/Recursion/factorial.py",
	}, names)
}

func TestFindScripts(t *testing.T) {
	cfg := testConfig(t)
	refs, err := collectScripts(cfg)
	require.NoError(t, err)

	found := findScripts(refs, "factorial", 10)
	require.NotEmpty(t, found)
	assert.Equal(t, "factorial.py", found[0].Script)

	found = findScripts(refs, "lab1", 1)
	require.Len(t, found, 1)
	assert.Equal(t, "Lab1", found[0].Folder)

	assert.Empty(t, findScripts(refs, "zzzz", 10))
}

func TestListFoldersAndScripts(t *testing.T) {
	cfg := testConfig(t)

	units, err := listUnits(cfg)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, 2, units[0].Count)
	assert.Equal(t, 1, units[1].Count)

	folders, err := listFolders(cfg, "1")
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "Lab1", folders[0].Name)
	assert.Equal(t, 2, folders[0].Count)

	scripts, err := listScripts(cfg, "Unit 2", "Recursion")
	require.NoError(t, err)
	require.Len(t, scripts, 1)
	assert.Equal(t, "factorial.py", scripts[0].Name)
	assert.Equal(t, len("print(1)\n"), scripts[0].Count)
}

func TestWriteEntries(t *testing.T) {
	cfg := testConfig(t)
	folders, err := listFolders(cfg, "1")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, writeEntries(&out, "#\tFOLDER\tSCRIPTS\tPATH", folders))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.Contains(t, lines[1], "Lab1")
	assert.Contains(t, lines[2], "Lab2")

	out.Reset()
	require.NoError(t, writeEntries(&out, "#\tFOLDER\tSCRIPTS\tPATH", nil))
	assert.Equal(t, "Nothing found\n", out.String())
}

func TestWriteFoundAndJSON(t *testing.T) {
	cfg := testConfig(t)
	refs, err := collectScripts(cfg)
	require.NoError(t, err)
	found := findScripts(refs, "factorial", 1)
	require.Len(t, found, 1)

	var out bytes.Buffer
	require.NoError(t, writeFound(&out, found))
	assert.Contains(t, out.String(), "Unit 2/Recursion/factorial.py")

	out.Reset()
	require.NoError(t, outputJSON(&out, found))
	var decoded []scriptRef
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, found, decoded)
}

func TestCollectScripts_CommonFolderNames(t *testing.T) {
	cfg := testConfig(t)
	for _, dir := range []string{"build", "__pycache__"} {
		path := filepath.Join(cfg.Root, "Unit 1", dir, "x.py")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("print(1)\n"), 0644))
	}

	refs, err := collectScripts(cfg)
	require.NoError(t, err)
	var folders []string
	for _, r := range refs {
		folders = append(folders, r.Folder)
	}
	assert.Contains(t, folders, "build")
	assert.NotContains(t, folders, "__pycache__")
}

func TestNewLauncher_DryRun(t *testing.T) {
	cfg := testConfig(t)
	cfg.Launcher.Command = "gnome-terminal -- python3 {path}"

	var out bytes.Buffer
	l, err := newLauncher(cfg, &out, true)
	require.NoError(t, err)

	path := filepath.Join(cfg.Root, "Unit 1", "Lab1", "ex1.py")
	require.NoError(t, l.Launch(context.Background(), path))
	assert.Equal(t, "would run: gnome-terminal -- python3 "+path+"\n", out.String())
}

func TestNewLauncher_BadTemplate(t *testing.T) {
	cfg := testConfig(t)
	cfg.Launcher.Command = `xterm -e "unterminated`

	_, err := newLauncher(cfg, &bytes.Buffer{}, false)
	assert.Error(t, err)
}
