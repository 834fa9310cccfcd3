package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tormodhaugland/scriptnav/internal/fs"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SCRIPTNAV_ROOT", "")
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".py", cfg.Suffix)
	assert.True(t, cfg.UI.ClearScreen)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, []string{"__pycache__"}, cfg.IgnoreDirs)
	require.Len(t, cfg.Units, 2)
	assert.Equal(t, Unit{Key: "1", Label: "Unit 1"}, cfg.Units[0])
	assert.Equal(t, Unit{Key: "2", Label: "Unit 2"}, cfg.Units[1])
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, cfg.Root)
	assert.Equal(t, DefaultUnits(), cfg.Units)
	assert.Equal(t, ".py", cfg.Suffix)
	assert.Equal(t, []string{"__pycache__"}, cfg.IgnoreDirs)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "nav.yaml")
	content := `root: ` + dir + `
suffix: .rb
ignore_dirs:
  - vendor
units:
  - key: a
    label: Algebra
    dir: algebra
  - key: b
    label: Biology
launcher:
  command: "gnome-terminal -- ruby {path}"
ui:
  clear_screen: false
  highlight: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, ".rb", cfg.Suffix)
	assert.Equal(t, []string{"vendor"}, cfg.IgnoreDirs)
	assert.Equal(t, []Unit{
		{Key: "a", Label: "Algebra", Dir: "algebra"},
		{Key: "b", Label: "Biology"},
	}, cfg.Units)
	assert.Equal(t, "gnome-terminal -- ruby {path}", cfg.Launcher.Command)
	assert.False(t, cfg.UI.ClearScreen)
	assert.True(t, cfg.UI.Highlight)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_XDGConfig(t *testing.T) {
	xdg := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, AppName), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(xdg, AppName, "config.json"),
		[]byte(`{"suffix": ".sh", "log": {"level": "debug"}}`),
		0644,
	))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ".sh", cfg.Suffix)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	t.Setenv("SCRIPTNAV_ROOT", root)
	t.Setenv("SCRIPTNAV_UI_PLAIN", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, root, cfg.Root)
	assert.True(t, cfg.UI.Plain)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestExpandPaths_Home(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	cfg := &Config{Root: "~/Courses"}
	require.NoError(t, cfg.expandPaths())
	assert.Equal(t, filepath.Join(home, "Courses"), cfg.Root)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", *DefaultConfig(), false},
		{"empty suffix", Config{Units: DefaultUnits()}, true},
		{"no units", Config{Suffix: ".py"}, true},
		{"missing key", Config{Suffix: ".py", Units: []Unit{{Label: "x"}}}, true},
		{"reserved key", Config{Suffix: ".py", Units: []Unit{{Key: "0", Label: "x"}}}, true},
		{"no label or dir", Config{Suffix: ".py", Units: []Unit{{Key: "1"}}}, true},
		{"dir only", Config{Suffix: ".py", Units: []Unit{{Key: "1", Dir: "u1"}}}, false},
		{"duplicate key", Config{Suffix: ".py", Units: []Unit{{Key: "1", Label: "a"}, {Key: "1", Label: "b"}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFindUnit(t *testing.T) {
	cfg := &Config{Units: []Unit{
		{Key: "1", Label: "Unit 1"},
		{Key: "2", Label: "Unit 2", Dir: "second"},
	}}

	u, ok := cfg.FindUnit("1")
	require.True(t, ok)
	assert.Equal(t, "Unit 1", u.Label)

	u, ok = cfg.FindUnit("unit 2")
	require.True(t, ok)
	assert.Equal(t, "2", u.Key)

	u, ok = cfg.FindUnit("SECOND")
	require.True(t, ok)
	assert.Equal(t, "2", u.Key)

	_, ok = cfg.FindUnit("3")
	assert.False(t, ok)
}

func TestFolderFilter(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Lab1", "build", "env", "__pycache__"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0755))
	}

	cfg := DefaultConfig()
	names, err := fs.ListEntries(dir, cfg.FolderFilter())
	require.NoError(t, err)
	assert.Equal(t, []string{"Lab1", "build", "env"}, names)

	cfg.IgnoreDirs = nil
	names, err = fs.ListEntries(dir, cfg.FolderFilter())
	require.NoError(t, err)
	assert.Len(t, names, 4)
}

func TestUnitPath(t *testing.T) {
	cfg := &Config{Root: "/srv/courses"}

	assert.Equal(t, filepath.Join("/srv/courses", "Unit 1"), cfg.UnitPath(Unit{Key: "1", Label: "Unit 1"}))
	assert.Equal(t, filepath.Join("/srv/courses", "u2"), cfg.UnitPath(Unit{Key: "2", Label: "Unit 2", Dir: "u2"}))
}
