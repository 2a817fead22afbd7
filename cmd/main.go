package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/mixtape-cli/mixtape/internal/services"
	"github.com/mixtape-cli/mixtape/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	godotenv.Load()

	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warnf("ignoring unreadable config.toml: %v", err)
		}
	}
	applyEnvOverrides(config)

	metadata := services.NewAudioDBService(config.API.BaseURL, config.API.Key, nil)

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Metadata: metadata,
		Logger:   logger,
	})

	app := &cli.Command{
		Name:     "mixtape",
		Usage:    "Manage local playlists backed by TheAudioDB metadata",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

// applyEnvOverrides lets environment variables win over file config.
func applyEnvOverrides(config *shared.Config) {
	if v := os.Getenv("MIXTAPE_API_BASE_URL"); v != "" {
		config.API.BaseURL = v
	}
	if v := os.Getenv("MIXTAPE_API_KEY"); v != "" {
		config.API.Key = v
	}
	if v := os.Getenv("MIXTAPE_DB_PATH"); v != "" {
		config.Database.Path = v
	}
	if v := os.Getenv("MIXTAPE_SESSION_PATH"); v != "" {
		config.Session.Path = v
	}
}
