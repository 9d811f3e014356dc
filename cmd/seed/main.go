package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"balloon-flights-backend/internal/config"
	"balloon-flights-backend/internal/database"
	"balloon-flights-backend/internal/logger"
	"balloon-flights-backend/internal/repository"
	"balloon-flights-backend/internal/seed"
	"balloon-flights-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	dataDir := flag.String("data", "seed", "directory holding seed YAML files")
	flag.Parse()

	_ = godotenv.Load()

	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	data, err := seed.LoadDir(afero.NewOsFs(), *dataDir)
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}

	users := service.NewUserService(repository.NewUserRepository(db), validator.New())
	summary, err := seed.NewLoader(db, users).Apply(context.Background(), data)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Printf("📋 Users: %d, pilots: %d, balloons: %d, airways: %d, affiliations: %d created",
		summary.Users, summary.Pilots, summary.Balloons, summary.Airways, summary.Affiliations)
	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
