package main

import (
	"log"

	"github.com/brightlearn/assessment/internal/bank"
	"github.com/brightlearn/assessment/internal/config"
	"github.com/brightlearn/assessment/internal/database"
)

// Loads the built-in authored question bank into Postgres so the
// server can serve it ahead of the synthesized fallback.
func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required to seed the question bank")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := bank.NewPostgres(db)
	count := 0
	for _, q := range bank.SeedQuestions() {
		if err := store.SaveQuestion(q); err != nil {
			log.Fatalf("Failed to seed question %s: %v", q.ID, err)
		}
		count++
	}

	log.Printf("Seeded %d questions", count)
}
