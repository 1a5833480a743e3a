package main

import (
	"github.com/oggyb/interview-match/internal/config"
	"github.com/oggyb/interview-match/internal/db"
	"github.com/oggyb/interview-match/internal/logger"
)

func main() {
	// Load configuration
	cfg := config.New()
	logger.InitFromConfig(cfg)
	log := logger.L()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	if err := db.SeedTestData(database); err != nil {
		log.Error("failed to seed", "err", err)
		return
	}

	log.Info("seeding completed")
}
