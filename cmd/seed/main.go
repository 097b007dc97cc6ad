package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"novelhub/database"
	"novelhub/internal/config"
	"novelhub/internal/shared"
)

func main() {
	adminName := flag.String("admin", "admin", "administrator username")
	adminPassword := flag.String("admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "administrator password (or SEED_ADMIN_PASSWORD)")
	demo := flag.Bool("demo", true, "also create demo novels, chapters and a reader account")
	demoTickets := flag.Int64("demo-tickets", 100, "monthly tickets given to the demo reader")
	flag.Parse()

	if *adminPassword == "" {
		log.Fatal("an administrator password is required: -admin-password or SEED_ADMIN_PASSWORD")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := shared.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	db, err := database.OpenGorm(cfg, logger)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	s := newSeeder(db, logger)
	if err := s.ensureAdmin(ctx, *adminName, *adminPassword); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if *demo {
		if err := s.demoData(ctx, *demoTickets); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}
	logger.Info("seed_complete")
}
