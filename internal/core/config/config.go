// Package config handles configuration loading and validation for backlog.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/backlog/internal/core/styles"
)

// DefaultBacklogFile is where a repository's backlog lives, relative to the
// repository root.
const DefaultBacklogFile = ".todo/backlog.json"

// Config holds the application configuration.
type Config struct {
	Theme       string            `yaml:"theme"`
	Colors      map[string]string `yaml:"colors"`
	BacklogFile string            `yaml:"backlog_file"`
	IndexFile   string            `yaml:"index_file"`
	Editor      EditorConfig      `yaml:"editor"`
	Remove      RemoveConfig      `yaml:"remove"`
	DataDir     string            `yaml:"-"` // set by caller, not from config file
}

// EditorConfig holds settings for the interactive editor.
type EditorConfig struct {
	HideDone bool `yaml:"hide_done"`
}

// RemoveConfig holds settings for `backlog remove`.
type RemoveConfig struct {
	Confirm bool `yaml:"confirm"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:       styles.DefaultTheme,
		Colors:      map[string]string{},
		BacklogFile: DefaultBacklogFile,
		Remove: RemoveConfig{
			Confirm: true,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.BacklogFile == "" {
		c.BacklogFile = defaults.BacklogFile
	}
	if c.Colors == nil {
		c.Colors = map[string]string{}
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", c.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	if c.BacklogFile == "" {
		return fmt.Errorf("backlog_file cannot be empty")
	}

	for key := range c.Colors {
		if !slices.Contains(styles.ColorKeys, key) {
			return fmt.Errorf("colors: unknown key %q", key)
		}
	}

	return nil
}

// Palette returns the configured theme with colour overrides applied.
func (c *Config) Palette() (styles.Palette, error) {
	p, ok := styles.GetPalette(c.Theme)
	if !ok {
		return styles.Palette{}, fmt.Errorf("unknown theme %q", c.Theme)
	}
	return p.WithOverrides(c.Colors)
}

// BacklogPath returns the backlog file of the repository rooted at repoRoot.
func (c *Config) BacklogPath(repoRoot string) string {
	path := expandHome(c.BacklogFile)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(repoRoot, path)
}

// IndexPath returns the path of the global repository index.
func (c *Config) IndexPath() string {
	if c.IndexFile != "" {
		return expandHome(c.IndexFile)
	}
	return filepath.Join(c.DataDir, "index.json")
}

// LogFile returns the default log file path.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "backlog.log")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
