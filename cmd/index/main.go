package main

import (
	"context"
	"log"
	"time"

	"ultihub/internal/config"
	"ultihub/internal/database"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	log.Println("Migration completed successfully!")
}
