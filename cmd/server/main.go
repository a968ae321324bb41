package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/jiwonnow/jiwonnow/internal/api"
	"github.com/jiwonnow/jiwonnow/internal/config"
	"github.com/jiwonnow/jiwonnow/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found, using process environment")
	}

	cfg := config.FromEnv()

	ctx := context.Background()
	pool, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := store.ApplyMigrations(ctx, pool); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	srv := api.NewServer(pool, cfg)
	log.Printf("Server starting on port %s...", cfg.Port)
	if err := srv.Start(cfg.Port); err != nil {
		log.Fatal(err)
	}
}
