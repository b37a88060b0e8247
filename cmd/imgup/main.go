// File: cmd/imgup/main.go
package main

import (
	"os"

	"imgup/internal/config"
	"imgup/internal/logger"

	// Explicitly import provider implementations to ensure their init() functions run and they register themselves
	_ "imgup/pkg/media/cloudinary"
	_ "imgup/pkg/media/gcs"
	_ "imgup/pkg/media/s3"
)

func main() {
	log := logger.NewLogger(os.Stderr)

	if err := config.LoadDotEnv(); err != nil {
		log.Warn("Ignoring unreadable .env file", "error", err)
	}

	cfgManager, err := config.NewConfigManager()
	if err != nil {
		log.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	app, err := newApp(log, cfgManager, os.Stdin, os.Stdout)
	if err != nil {
		log.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	os.Exit(Execute(app, os.Args[1:], os.Stdout, os.Stderr))
}
