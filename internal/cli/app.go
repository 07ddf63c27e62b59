// Package cli provides the command-line interface: cobra commands that
// call exactly one service operation each and render its result.
package cli

import (
	"context"
	"os"

	"project-manager/internal/config"
	"project-manager/internal/services"
)

// App represents the CLI application
type App struct {
	manager  *services.ProjectManager
	renderer *Renderer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(manager *services.ProjectManager, cfg *config.Config) *App {
	return &App{
		manager:  manager,
		renderer: NewRenderer(os.Stdout, cfg.Display.EmptyCell),
	}
}

// Execute parses arguments and runs the selected command.
func (a *App) Execute(ctx context.Context) error {
	return newRootCommand(a).ExecuteContext(ctx)
}

// Renderer returns the renderer, for messages outside command flow.
func (a *App) Renderer() *Renderer {
	return a.renderer
}
