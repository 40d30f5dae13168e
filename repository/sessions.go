package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"courtsync/model"
	"courtsync/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetSessionsRepo(client *mongo.Client) *SessionsRepo {
	dbName := os.Getenv("MONGO_DB")
	return &SessionsRepo{
		MongoCollection: client.Database(dbName).Collection("sessions"),
	}
}

type SessionsRepo struct {
	MongoCollection *mongo.Collection
}

func (r *SessionsRepo) CreateSession(ctx context.Context, session *model.Session) error {
	timer := utils.TrackDBOperation("insert", "sessions")
	defer timer.ObserveDuration()

	if _, err := r.MongoCollection.InsertOne(ctx, session); err != nil {
		utils.TrackError("database", "session_creation_failed")
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *SessionsRepo) ActiveSessions(ctx context.Context, userID string) ([]*model.Session, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{
		"user_id":    userID,
		"is_active":  true,
		"expires_at": bson.M{"$gt": time.Now()},
	})
	if err != nil {
		utils.TrackError("database", "session_fetch_failed")
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	var sessions []*model.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		utils.TrackError("database", "session_decode_failed")
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}

	return sessions, nil
}

func (r *SessionsRepo) EndUserSessions(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"user_id": userID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		utils.TrackError("database", "session_end_failed")
		return fmt.Errorf("failed to end sessions: %w", err)
	}

	return nil
}
