// @title Advent Quiz Competition API
// @version 1.0
// @description Scoring and ranking backend for the advent quiz competition.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"
	"path/filepath"

	"advent_quiz_backend/internal/app"
	"advent_quiz_backend/internal/config"
	"advent_quiz_backend/pkg/configwatcher"
	"advent_quiz_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup, even in release mode")
	configDir := flag.String("config", "configs", "directory holding config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	go configwatcher.Watch(filepath.Join(*configDir, "config.yaml"), func(newCfg *config.Config) {
		application.Game.UpdateConfig(newCfg.Game)
	})

	application.Run()
}
