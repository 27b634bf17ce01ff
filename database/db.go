package database

import (
	"context"
	"log"
	"time"

	"meditrip/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var db *mongo.Database

// InitDB connects to MongoDB and selects the configured database. It must
// run before any repository constructor.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(config.AppConfig.DatabaseURL).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}

	db = client.Database(config.AppConfig.DatabaseName)
	log.Printf("Connected to MongoDB, using database %q", config.AppConfig.DatabaseName)
}

// Collection returns a handle scoped to the configured database.
func Collection(name string) *mongo.Collection {
	if db == nil {
		log.Fatal("database not initialized, call InitDB first")
	}
	return db.Collection(name)
}
