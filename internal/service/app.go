package service

import (
	"github.com/rs/zerolog"

	"github.com/colonyops/backlog/internal/core/config"
	"github.com/colonyops/backlog/internal/store/jsonfile"
)

// App is the central entry point for backlog operations.
// Commands consume App instead of cherry-picking raw dependencies.
type App struct {
	Backlogs *BacklogService
	Config   *config.Config
	Log      zerolog.Logger
}

// NewApp constructs an App from the loaded configuration.
func NewApp(cfg *config.Config, log zerolog.Logger) *App {
	index := jsonfile.NewIndexStore(cfg.IndexPath())
	return &App{
		Backlogs: NewBacklogService(cfg, index, log),
		Config:   cfg,
		Log:      log,
	}
}
