package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/kimhouy1997/lms-portal-sub000/internal/pkg/logger"
	"github.com/kimhouy1997/lms-portal-sub000/internal/server"
)

// @title LMS Portal API
// @version 1.0
// @description API for the LMS Portal learning platform
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@lms-portal.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Load .env if present; real deployments set env vars directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
