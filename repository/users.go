package repository

import (
	"context"
	"errors"
	"os"

	"courtsync/model"
	"courtsync/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetUsersRepo(client *mongo.Client) *UsersRepo {
	dbName := os.Getenv("MONGO_DB")
	return &UsersRepo{
		MongoCollection: client.Database(dbName).Collection("users"),
	}
}

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

func (r *UsersRepo) AddUser(ctx context.Context, user *model.User) (interface{}, error) {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.Email == "" || user.PasswordHash == "" {
		utils.TrackError("database", "invalid_user_data")
		return nil, errors.New("email and password required")
	}

	result, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		utils.TrackError("database", "user_creation_failed")
		return nil, errors.New("failed to add user to database")
	}

	return result.InsertedID, nil
}

func (r *UsersRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.TrackError("database", "user_not_found")
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

func (r *UsersRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.TrackError("database", "user_not_found")
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

func (r *UsersRepo) EnableTwoFactor(ctx context.Context, userID, secret string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"two_factor_secret":  secret,
			"two_factor_enabled": true,
		}})
	if err != nil {
		utils.TrackError("database", "2fa_enable_failed")
		return err
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "user_not_found")
		return errors.New("user not found")
	}

	return nil
}
