package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"studiobooking/internal/config"
	"studiobooking/internal/database"
	"studiobooking/internal/modules/booking"
	"studiobooking/internal/repository"
)

// One-shot sweep of expired pending reservations, for running from cron
// instead of (or in addition to) the API's background reclaimer.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadBookingRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	reclaimer := booking.NewReclaimer(repository.NewReservationRepository(db), cfg.PendingRetention, cfg.SweepInterval)

	reclaimed, err := reclaimer.ReclaimExpired(context.Background())
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}
	log.Printf("sweep completed: reclaimed=%d", reclaimed)
}
