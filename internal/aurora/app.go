// Package aurora wires the core domain packages into the services the
// commands and TUI consume.
package aurora

import (
	"github.com/rs/zerolog"

	"github.com/aurora-ops/aurora/internal/core/config"
	"github.com/aurora-ops/aurora/internal/core/speech"
	"github.com/aurora-ops/aurora/internal/core/task"
)

// App is the central entry point for all aurora operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Tasks     *TaskService
	Catalog   *CatalogService
	Assistant *AssistantService

	Config *config.Config
}

// NewApp constructs an App from explicit dependencies.
func NewApp(cfg *config.Config, taskStore task.Store, speaker speech.Speaker, log zerolog.Logger) *App {
	tasks := NewTaskService(taskStore, log)
	return &App{
		Tasks:     tasks,
		Catalog:   NewCatalogService(log),
		Assistant: NewAssistantService(cfg, tasks, speaker, log),
		Config:    cfg,
	}
}
