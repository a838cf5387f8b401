package database

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"confgive/config"
	"confgive/dto/model"
)

var MongoClient *mongo.Client

// ConnectDB opens the postgres audit database. Configuration is optional:
// without DB_NAME the service runs cache-only with a logged warning.
func ConnectDB() {
	dbName := config.Config("DB_NAME", "")
	if dbName == "" {
		log.Println("DB_NAME not configured; attempt audit log disabled")
		return
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		config.Config("DB_HOST", "localhost"),
		config.Config("DB_USER", ""),
		config.Config("DB_PASSWORD", ""),
		dbName,
		config.Config("DB_PORT", "5432"))

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Println("failed to connect to database; attempt audit log disabled:", err)
		DB = nil
		return
	}

	log.Println("Connection Opened to Database")

	if err := DB.AutoMigrate(&model.GiveAttempt{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database Migrated")
}

// SetupMongoDB connects the payment-method catalog store. Optional: without
// MONGODB_URI the built-in catalog defaults are used.
func SetupMongoDB() {
	uri := config.Config("MONGODB_URI", "")
	if uri == "" {
		log.Println("MONGODB_URI not configured; using built-in payment method catalog")
		return
	}

	var err error
	MongoClient, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("failed to connect to MongoDB; using built-in payment method catalog:", err)
		MongoClient = nil
		return
	}

	log.Println("Connected to MongoDB")
}

// GetCollection returns a catalog collection handle.
func GetCollection(databaseName, collectionName string) *mongo.Collection {
	return MongoClient.Database(databaseName).Collection(collectionName)
}
