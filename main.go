package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devanshioza/skillfolio/api"
	"github.com/devanshioza/skillfolio/config"
	"github.com/devanshioza/skillfolio/db"
	"github.com/devanshioza/skillfolio/genai"
	"github.com/devanshioza/skillfolio/scraper"
	"github.com/devanshioza/skillfolio/skillz"
)

func main() {
	// Step 1: Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("❌ could not load configuration: %v", err)
	}
	log.Println("✅ Configuration loaded successfully.")

	// Step 2: Establish database connection pool
	connPool, err := pgxpool.New(context.Background(), cfg.DBSource)
	if err != nil {
		log.Fatalf("❌ could not connect to the database: %v", err)
	}
	defer connPool.Close()
	log.Println("✅ Database connection pool established.")

	// Step 3: Initialize the database store
	store := db.NewStore(connPool)

	// Step 4: Initialize the model client and the skill pipeline
	llm := genai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiAPIURL, cfg.GeminiModel, &http.Client{})
	analyzer := skillz.NewAnalyzer(llm, scraper.New(nil))
	mentor := skillz.NewMentor(llm, store)
	normalizer := skillz.NewNormalizer(skillz.DefaultAliases())
	log.Println("✅ Skill pipeline (Gemini) initialized.")

	// Step 5: Create a new API server instance
	server, err := api.NewServer(cfg, store, llm, analyzer, mentor, normalizer)
	if err != nil {
		log.Fatalf("❌ could not create the server: %v", err)
	}
	log.Println("✅ API server created.")

	// Step 6: Start the HTTP server
	log.Printf("🚀 Starting server on %s", cfg.ServerAddress)
	if err := server.Start(cfg.ServerAddress); err != nil {
		log.Fatalf("❌ failed to start server: %v", err)
	}
}
