package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/brightlearn/assessment/internal/archive"
	"github.com/brightlearn/assessment/internal/assessment"
	"github.com/brightlearn/assessment/internal/bank"
	"github.com/brightlearn/assessment/internal/config"
	"github.com/brightlearn/assessment/internal/database"
)

func main() {
	cfg := config.Load()

	curriculum := bank.NewStaticCurriculum()
	memoryBank := bank.NewSeededMemory(curriculum)

	var questionBank bank.Store = memoryBank
	var archiver archive.Archiver = archive.NewLogArchiver()

	// With a database, authored questions take priority over the
	// built-in bank and completed sessions are persisted.
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		questionBank = bank.NewFallback(bank.NewPostgres(db), memoryBank)
		archiver = archive.NewPostgres(db)
		log.Printf("Database connected: authored bank and archiving enabled")
	} else {
		log.Printf("No DATABASE_URL set: running with the in-memory bank only")
	}

	sessions := assessment.NewMemorySessionStore()
	service := assessment.NewService(questionBank, curriculum, sessions, archiver)
	handler := assessment.NewHandler(service)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/assessments", handler.CreateSession).Methods("POST")
	api.HandleFunc("/assessments/{id}/responses", handler.SubmitResponse).Methods("POST")
	api.HandleFunc("/assessments/{id}/report", handler.GetReport).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
