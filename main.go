// main.go
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/BackamDavid/ecommerce-app/cmd"
	"github.com/BackamDavid/ecommerce-app/internal/data/repository"
	"github.com/BackamDavid/ecommerce-app/internal/wire"
	"github.com/BackamDavid/ecommerce-app/pkg/database"
	"github.com/BackamDavid/ecommerce-app/pkg/token"
	"github.com/BackamDavid/ecommerce-app/pkg/utils"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database (runs migrations)
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Session token issuer
	tokens := token.NewJWT(config.JWT.Secret, config.JWT.ExpiryHours)

	// Wire all dependencies
	app := wire.Wiring(repos, tokens, config, logger)

	// Seed the bootstrap admin account
	if err := app.Service.Auth.EnsureAdmin(context.Background()); err != nil {
		logger.Fatal("Failed to seed admin account", zap.Error(err))
	}

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
