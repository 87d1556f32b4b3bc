package config

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	db          *mongo.Database
	client      *mongo.Client
	once        sync.Once
	indexesOnce sync.Once
)

// ConnectDB initializes and returns the MongoDB database connection
func ConnectDB() *mongo.Database {
	once.Do(func() {
		mongoURI := os.Getenv("MONGODB_URI")
		if mongoURI == "" {
			log.Fatal("Please define the MONGODB_URI environment variable")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		c, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}

		log.Println("Connected to MongoDB!")

		client = c
		db = client.Database("civic-reporter")
	})

	return db
}

// GetCollection returns a MongoDB collection by name
func GetCollection(name string) *mongo.Collection {
	return ConnectDB().Collection(name)
}

// EnsureIndexes performs process-wide index bootstrap exactly once. The
// unique indexes also narrow the non-atomic check-then-insert windows in
// the migration and dual-key update paths to duplicate-key errors.
func EnsureIndexes() error {
	var err error
	indexesOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		objects := GetCollection("civicObjects")
		_, err = objects.Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "qrCodeId", Value: 1}},
				Options: options.Index().SetUnique(true).SetSparse(true),
			},
		})
		if err != nil {
			return
		}

		issues := GetCollection("issues")
		_, err = issues.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "trackingId", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return
		}

		users := GetCollection("users")
		_, err = users.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "aadharNumber", Value: 1}, {Key: "role", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
	})
	return err
}
