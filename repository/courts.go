package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"courtsync/model"
	"courtsync/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetCourtsRepo(client *mongo.Client) *CourtsRepo {
	dbName := os.Getenv("MONGO_DB")
	return &CourtsRepo{
		MongoCollection: client.Database(dbName).Collection("courts"),
	}
}

type CourtsRepo struct {
	MongoCollection *mongo.Collection
}

func (r *CourtsRepo) FindAll(ctx context.Context) ([]model.Court, error) {
	timer := utils.TrackDBOperation("find", "courts")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.D{})
	if err != nil {
		utils.TrackError("database", "courts_fetch_failed")
		return nil, fmt.Errorf("failed to fetch courts: %w", err)
	}

	var courts []model.Court
	if err := cursor.All(ctx, &courts); err != nil {
		utils.TrackError("database", "courts_decode_failed")
		return nil, fmt.Errorf("failed to decode courts: %w", err)
	}

	SortCourtsByName(courts)
	return courts, nil
}

func (r *CourtsRepo) FindByID(ctx context.Context, courtID string) (*model.Court, error) {
	timer := utils.TrackDBOperation("find", "courts")
	defer timer.ObserveDuration()

	var court model.Court
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": courtID}).Decode(&court)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		utils.TrackError("database", "court_lookup_error")
		return nil, err
	}

	return &court, nil
}

// UpdateStatus writes the new status only when the stored one still matches
// what the caller saw. A toggle racing another writer matches nothing and
// fails instead of clobbering the newer state.
func (r *CourtsRepo) UpdateStatus(ctx context.Context, courtID string, from, to model.CourtStatus) error {
	timer := utils.TrackDBOperation("update", "courts")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": courtID, "status": from},
		bson.M{"$set": bson.M{"status": to}})
	if err != nil {
		utils.TrackError("database", "court_status_update_failed")
		return fmt.Errorf("failed to update court status: %w", err)
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "court_status_conflict")
		return errors.New("court not found or status changed")
	}

	return nil
}

// SortCourtsByName orders courts so that "Court 10" sorts after "Court 9".
func SortCourtsByName(courts []model.Court) {
	sort.SliceStable(courts, func(i, j int) bool {
		a, aOK := courtNumber(courts[i].Name)
		b, bOK := courtNumber(courts[j].Name)
		if aOK && bOK {
			return a < b
		}
		return courts[i].Name < courts[j].Name
	})
}

func courtNumber(name string) (int, bool) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}
