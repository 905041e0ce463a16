package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colonyops/backlog/internal/core/config"
	"github.com/colonyops/backlog/internal/service"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// WorkDir overrides the directory used to find the current repository.
	// Empty means the process working directory.
	WorkDir string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "backlog", "config.yaml")
}

// DefaultDataDir returns ~/.backlog, which also holds the global index.
func DefaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".backlog")
}

// currentRepo resolves the repository that contains the working directory.
func currentRepo(flags *Flags, app *service.App) (service.Repo, error) {
	dir := flags.WorkDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return service.Repo{}, fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	return app.Backlogs.Repo(dir)
}
