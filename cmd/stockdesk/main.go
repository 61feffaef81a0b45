package main

import (
	"os"

	"github.com/tair/stockdesk/internal/app"
	"github.com/tair/stockdesk/internal/config"
	"github.com/tair/stockdesk/pkg/logger"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init("stockdesk", cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("data_file", cfg.DataFile).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting stockdesk")

	// Initialize the application with Wire DI
	application := app.InitializeApp(cfg)

	console := NewConsole(application, os.Stdin, os.Stdout)
	if err := console.Run(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Console session failed")
	}

	logger.Logger.Info().Msg("Session ended")
}
