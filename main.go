package main

import (
	"context"
	"log"
	"time"

	"cinenyc-booking/cmd"
	"cinenyc-booking/internal/data/catalog"
	"cinenyc-booking/internal/data/repository"
	"cinenyc-booking/internal/wire"
	"cinenyc-booking/pkg/database"
	"cinenyc-booking/pkg/utils"

	"go.uber.org/zap"
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

	ctx := context.Background()

	// Connect to database when configured; fall back to the built-in catalog
	// fixtures otherwise.
	var db database.PgxIface
	if config.Database.Host != "" {
		db, err = database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		logger.Info("Database connected successfully")
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Load the catalog
	var cat *catalog.Catalog
	if repos.Catalog != nil {
		cat, err = repos.Catalog.Load(ctx)
		if err != nil {
			logger.Fatal("Failed to load catalog from database", zap.Error(err))
		}
		logger.Info("Catalog loaded from database")
	} else {
		cat, err = catalog.Fixtures()
		if err != nil {
			logger.Fatal("Failed to load catalog fixtures", zap.Error(err))
		}
		logger.Info("Catalog loaded from fixtures")
	}

	// Wire all dependencies
	app, err := wire.Wiring(ctx, cat, repos, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}
	defer app.Close()

	// Prune idle sessions in the background
	ttl := time.Duration(config.Session.IdleTTLMinutes) * time.Minute
	go func() {
		ticker := time.NewTicker(ttl / 2)
		defer ticker.Stop()
		for range ticker.C {
			repos.Session.PruneIdle(ttl)
		}
	}()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
