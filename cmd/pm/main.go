package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"project-manager/internal/cli"
	"project-manager/internal/config"
	"project-manager/internal/logging"
	"project-manager/internal/repository/jsonfile"
	"project-manager/internal/services"
)

func main() {
	cfg := config.NewConfig()
	cfg.LoadFromEnvironment()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Application.Verbose)

	store, err := jsonfile.New(cfg.DocumentPath(), os.FileMode(cfg.Storage.DirPermissions), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)
		os.Exit(1)
	}

	manager := services.New(store, logger)
	app := cli.NewApp(manager, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			app.Renderer().Info("Operation cancelled by user.")
			return
		}
		fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)
		os.Exit(1)
	}
}
