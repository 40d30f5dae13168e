package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"courtsync/model"
	"courtsync/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetActivityLogsRepo(client *mongo.Client) *ActivityLogsRepo {
	dbName := os.Getenv("MONGO_DB")
	return &ActivityLogsRepo{
		MongoCollection: client.Database(dbName).Collection("activityLogs"),
	}
}

type ActivityLogsRepo struct {
	MongoCollection *mongo.Collection
}

func (r *ActivityLogsRepo) Add(ctx context.Context, activity *model.Activity) error {
	timer := utils.TrackDBOperation("insert", "activityLogs")
	defer timer.ObserveDuration()

	if activity.UserName == "" {
		utils.TrackError("database", "invalid_activity_data")
		return errors.New("activity user name required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, activity); err != nil {
		utils.TrackError("database", "activity_insert_failed")
		return fmt.Errorf("failed to record activity: %w", err)
	}

	return nil
}

// Recent returns the newest entries by timestamp, descending.
func (r *ActivityLogsRepo) Recent(ctx context.Context, limit int64) ([]model.Activity, error) {
	timer := utils.TrackDBOperation("find", "activityLogs")
	defer timer.ObserveDuration()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.MongoCollection.Find(ctx, bson.D{}, opts)
	if err != nil {
		utils.TrackError("database", "activity_fetch_failed")
		return nil, fmt.Errorf("failed to fetch activity log: %w", err)
	}

	var activities []model.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		utils.TrackError("database", "activity_decode_failed")
		return nil, fmt.Errorf("failed to decode activity log: %w", err)
	}

	return activities, nil
}
