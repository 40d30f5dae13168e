package usecase

import (
	"context"
	"log"
	"time"

	"courtsync/model"
	"courtsync/services"
	"courtsync/utils"
)

// DirectoryWriter extends the read-only directory with account creation.
type DirectoryWriter interface {
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	AddUser(ctx context.Context, user *model.User) (interface{}, error)
}

// EnsureAdminAccount provisions the initial verified admin profile. Admin
// accounts are created here or by an operator, never through self-service
// registration. No-op when no seed credentials are configured or the
// profile already exists.
func EnsureAdminAccount(ctx context.Context, dir DirectoryWriter, email, password, displayName string) error {
	if email == "" || password == "" {
		return nil
	}

	existing, err := dir.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = dir.AddUser(ctx, &model.User{
		UserID:       utils.GenerateID(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		utils.TrackError("auth", "admin_seed_failed")
		return err
	}

	log.Printf("seeded admin account %s", email)
	return nil
}
