package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	requestIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}},
			Options: options.Index().
				SetName("request_status"),
		},
	}

	activityIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().
				SetName("activity_timestamp_desc"),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("user_email").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index").
				SetUnique(true),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_active", Value: 1},
			},
			Options: options.Index().
				SetName("user_active_sessions"),
		},
	}

	if _, err := db.Collection("eventRequests").Indexes().CreateMany(ctx, requestIndexes); err != nil {
		return fmt.Errorf("failed to create eventRequests indexes: %w", err)
	}
	if _, err := db.Collection("activityLogs").Indexes().CreateMany(ctx, activityIndexes); err != nil {
		return fmt.Errorf("failed to create activityLogs indexes: %w", err)
	}
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}
	if _, err := db.Collection("sessions").Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create sessions indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
