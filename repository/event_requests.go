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
)

func GetEventRequestsRepo(client *mongo.Client) *EventRequestsRepo {
	dbName := os.Getenv("MONGO_DB")
	return &EventRequestsRepo{
		client:          client,
		MongoCollection: client.Database(dbName).Collection("eventRequests"),
	}
}

type EventRequestsRepo struct {
	client          *mongo.Client
	MongoCollection *mongo.Collection
}

func (r *EventRequestsRepo) FindPending(ctx context.Context) ([]model.EventRequest, error) {
	timer := utils.TrackDBOperation("find", "eventRequests")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"status": model.RequestPending})
	if err != nil {
		utils.TrackError("database", "requests_fetch_failed")
		return nil, fmt.Errorf("failed to fetch event requests: %w", err)
	}

	var requests []model.EventRequest
	if err := cursor.All(ctx, &requests); err != nil {
		utils.TrackError("database", "requests_decode_failed")
		return nil, fmt.Errorf("failed to decode event requests: %w", err)
	}

	return requests, nil
}

// Approve commits the status change inside a multi-document transaction.
// Locking the requested courts belongs in the same callback once court
// names are mapped to documents; today only the request status changes.
func (r *EventRequestsRepo) Approve(ctx context.Context, requestID string) error {
	timer := utils.TrackDBOperation("transaction", "eventRequests")
	defer timer.ObserveDuration()

	session, err := r.client.StartSession()
	if err != nil {
		utils.TrackError("database", "transaction_start_failed")
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		result, err := r.MongoCollection.UpdateOne(sc,
			bson.M{"_id": requestID, "status": model.RequestPending},
			bson.M{"$set": bson.M{"status": model.RequestApproved}})
		if err != nil {
			return nil, err
		}
		if result.MatchedCount == 0 {
			return nil, errors.New("pending request not found")
		}
		return nil, nil
	})
	if err != nil {
		utils.TrackError("database", "request_approve_failed")
		return fmt.Errorf("failed to approve request: %w", err)
	}

	return nil
}

func (r *EventRequestsRepo) Decline(ctx context.Context, requestID string) error {
	timer := utils.TrackDBOperation("update", "eventRequests")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": requestID, "status": model.RequestPending},
		bson.M{"$set": bson.M{"status": model.RequestDeclined}})
	if err != nil {
		utils.TrackError("database", "request_decline_failed")
		return fmt.Errorf("failed to decline request: %w", err)
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "request_not_found")
		return errors.New("pending request not found")
	}

	return nil
}
