package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/tharatepjaiya-creator/Student-info1/internal/bootstrap"
	"github.com/tharatepjaiya-creator/Student-info1/internal/pkg/logger"
	"github.com/tharatepjaiya-creator/Student-info1/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	// A missing .env is fine; the environment may already be set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("could not load .env file")
	}

	app, err := bootstrap.New(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start application")
	}

	if err := server.New(app).Run(); err != nil {
		logger.Fatal().Err(err).Msg("server terminated")
	}
}
