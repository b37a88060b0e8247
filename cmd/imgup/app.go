// File: cmd/imgup/app.go
package main

import (
	"io"
	"log/slog"

	"imgup/internal/config"
	"imgup/internal/provider/factory"
	"imgup/internal/service"
	"imgup/internal/ui/prompt"
)

// appContainer holds all the shared dependencies for the application
// This includes configuration, the upload service, the prompter, and the logger
type appContainer struct {
	Config          *config.Config
	ConfigManager   *config.ConfigManager
	ProviderFactory *factory.Factory
	UploadService   *service.UploadService
	Prompter        prompt.Prompter
	Logger          *slog.Logger
}

// Creates and initializes a new application container. Confirmation prompts read from in and write to out.
func newApp(logger *slog.Logger, cfgManager *config.ConfigManager, in io.Reader, out io.Writer) (*appContainer, error) {
	cfg, err := cfgManager.LoadConfig()
	if err != nil {
		return nil, err
	}

	providerFactory := factory.NewFactory(cfg, logger)
	uploadService := service.NewUploadService(providerFactory, logger)

	return &appContainer{
		Config:          cfg,
		ConfigManager:   cfgManager,
		ProviderFactory: providerFactory,
		UploadService:   uploadService,
		Prompter:        prompt.NewStandardPrompter(in, out),
		Logger:          logger,
	}, nil
}
