package main

import (
	"context"
	"time"

	"easymed-booking/config"
	"easymed-booking/internal/infrastructure/database"
	"easymed-booking/internal/repository"

	"github.com/sirupsen/logrus"
)

// main creates the doctors table and loads the sample catalog into it.
// Usage: go run ./cmd/seed
// Run it before starting the server with CATALOG_SOURCE=postgres.
func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB, log, false)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	doctors := repository.SampleDoctors()
	if err := repository.NewDoctorSeeder(db).Upsert(ctx, doctors); err != nil {
		log.Fatalf("Failed to seed doctors: %v", err)
	}

	log.Infof("Seeded %d doctors", len(doctors))
}
