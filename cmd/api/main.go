package main

import (
	"os"

	"github.com/yigit/lmsdash/internal/pkg/logger"
	"github.com/yigit/lmsdash/internal/server"
)

// @title LMS Dashboard API
// @version 1.0
// @description Courses, assignments and to-do list for the learning dashboard

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
