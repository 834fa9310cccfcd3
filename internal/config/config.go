package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"github.com/tormodhaugland/scriptnav/internal/fs"
)

const (
	AppName   = "scriptnav"
	EnvPrefix = "SCRIPTNAV"

	DefaultSuffix = ".py"
)

// Unit is a top-level category shown in the main menu. Key is what the user
// types to select it; Dir is the directory below the root and falls back to
// Label.
type Unit struct {
	Key   string `mapstructure:"key" json:"key"`
	Label string `mapstructure:"label" json:"label"`
	Dir   string `mapstructure:"dir" json:"dir,omitempty"`
}

func (u Unit) DirName() string {
	if u.Dir != "" {
		return u.Dir
	}
	return u.Label
}

type LauncherConfig struct {
	// Command is a shell-style argv template; {path}, {dir} and {name} are
	// substituted. Empty selects the platform default.
	Command string `mapstructure:"command" json:"command,omitempty"`
}

type UIConfig struct {
	ClearScreen bool `mapstructure:"clear_screen" json:"clear_screen"`
	Highlight   bool `mapstructure:"highlight" json:"highlight"`
	Plain       bool `mapstructure:"plain" json:"plain"`
	TUIPrompts  bool `mapstructure:"tui_prompts" json:"tui_prompts"`
}

type LogConfig struct {
	Level string `mapstructure:"level" json:"level"`
}

type Config struct {
	Root   string `mapstructure:"root" json:"root"`
	Suffix string `mapstructure:"suffix" json:"suffix"`
	Units  []Unit `mapstructure:"units" json:"units"`
	// IgnoreDirs are subdirectory names never offered as folders.
	IgnoreDirs []string       `mapstructure:"ignore_dirs" json:"ignore_dirs"`
	Launcher   LauncherConfig `mapstructure:"launcher" json:"launcher"`
	UI         UIConfig       `mapstructure:"ui" json:"ui"`
	Log        LogConfig      `mapstructure:"log" json:"log"`
}

func DefaultUnits() []Unit {
	return []Unit{
		{Key: "1", Label: "Unit 1"},
		{Key: "2", Label: "Unit 2"},
	}
}

func DefaultConfig() *Config {
	return &Config{
		Root:       ".",
		Suffix:     DefaultSuffix,
		Units:      DefaultUnits(),
		IgnoreDirs: fs.DefaultIgnoredDirs(),
		UI: UIConfig{
			ClearScreen: true,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Load reads configuration from configPath, or from the user config
// directory when configPath is empty. A missing default config file is not
// an error. SCRIPTNAV_* environment variables override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("root", defaults.Root)
	v.SetDefault("suffix", defaults.Suffix)
	v.SetDefault("ignore_dirs", defaults.IgnoreDirs)
	v.SetDefault("launcher.command", defaults.Launcher.Command)
	v.SetDefault("ui.clear_screen", defaults.UI.ClearScreen)
	v.SetDefault("ui.highlight", defaults.UI.Highlight)
	v.SetDefault("ui.plain", defaults.UI.Plain)
	v.SetDefault("ui.tui_prompts", defaults.UI.TUIPrompts)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		for _, dir := range getConfigDirs() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Units) == 0 {
		cfg.Units = DefaultUnits()
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func getConfigDirs() []string {
	var dirs []string

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		if home, err := os.UserHomeDir(); err == nil {
			xdgConfig = filepath.Join(home, ".config")
		}
	}
	if xdgConfig != "" {
		dirs = append(dirs, filepath.Join(xdgConfig, AppName))
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			dirs = append(dirs, filepath.Join(appData, AppName))
		}
	}

	return dirs
}

func (c *Config) expandPaths() error {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Root == "~" || strings.HasPrefix(c.Root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("expand root: %w", err)
		}
		c.Root = filepath.Join(home, strings.TrimPrefix(c.Root, "~"))
	}

	abs, err := filepath.Abs(c.Root)
	if err != nil {
		return fmt.Errorf("resolve root %s: %w", c.Root, err)
	}
	c.Root = abs
	return nil
}

// Validate checks the unit table and suffix.
func (c *Config) Validate() error {
	if c.Suffix == "" {
		return errors.New("suffix must not be empty")
	}
	if len(c.Units) == 0 {
		return errors.New("at least one unit is required")
	}

	seen := make(map[string]bool, len(c.Units))
	for i, u := range c.Units {
		if u.Key == "" {
			return fmt.Errorf("unit %d: key is required", i+1)
		}
		if u.Key == "0" {
			return fmt.Errorf("unit %q: key 0 is reserved for exit", u.Label)
		}
		if u.DirName() == "" {
			return fmt.Errorf("unit %q: label or dir is required", u.Key)
		}
		if seen[u.Key] {
			return fmt.Errorf("unit key %q is used more than once", u.Key)
		}
		seen[u.Key] = true
	}
	return nil
}

// FindUnit resolves a unit by key, then by label or dir (case-insensitive).
func (c *Config) FindUnit(ref string) (Unit, bool) {
	for _, u := range c.Units {
		if u.Key == ref {
			return u, true
		}
	}
	for _, u := range c.Units {
		if strings.EqualFold(u.Label, ref) || strings.EqualFold(u.DirName(), ref) {
			return u, true
		}
	}
	return Unit{}, false
}

// FolderFilter selects the folders of a unit.
func (c *Config) FolderFilter() fs.Predicate {
	return fs.IsDir(c.IgnoreDirs...)
}

func (c *Config) UnitPath(u Unit) string {
	return filepath.Join(c.Root, u.DirName())
}
