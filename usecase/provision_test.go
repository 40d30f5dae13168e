package usecase

import (
	"context"
	"errors"
	"testing"

	"courtsync/model"
	"courtsync/services"
)

type fakeDirectoryWriter struct {
	byEmail map[string]*model.User
	added   []*model.User
	findErr error
}

func (f *fakeDirectoryWriter) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byEmail[email], nil
}

func (f *fakeDirectoryWriter) AddUser(ctx context.Context, user *model.User) (interface{}, error) {
	f.added = append(f.added, user)
	return user.UserID, nil
}

func TestEnsureAdminAccountCreatesProfile(t *testing.T) {
	dir := &fakeDirectoryWriter{byEmail: map[string]*model.User{}}

	err := EnsureAdminAccount(context.Background(), dir, "ops@upm.edu.my", "s3cret!pw", "Court Administrator")
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if len(dir.added) != 1 {
		t.Fatalf("expected one created profile, got %d", len(dir.added))
	}
	created := dir.added[0]
	if created.Role != model.RoleAdmin {
		t.Errorf("seeded profile must be admin, got %s", created.Role)
	}
	if created.UserID == "" {
		t.Error("seeded profile must get a user id")
	}
	if created.PasswordHash == "s3cret!pw" {
		t.Error("seeded password must be hashed")
	}

	ok, err := services.VerifyPassword(created.PasswordHash, "s3cret!pw")
	if err != nil || !ok {
		t.Errorf("seeded hash must verify against the seed password, ok=%v err=%v", ok, err)
	}
}

func TestEnsureAdminAccountIdempotent(t *testing.T) {
	dir := &fakeDirectoryWriter{byEmail: map[string]*model.User{
		"ops@upm.edu.my": {UserID: "u1", Email: "ops@upm.edu.my", Role: model.RoleAdmin},
	}}

	if err := EnsureAdminAccount(context.Background(), dir, "ops@upm.edu.my", "s3cret!pw", ""); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if len(dir.added) != 0 {
		t.Error("existing profile must not be recreated")
	}
}

func TestEnsureAdminAccountSkipsWithoutCredentials(t *testing.T) {
	dir := &fakeDirectoryWriter{byEmail: map[string]*model.User{}}

	if err := EnsureAdminAccount(context.Background(), dir, "", "", ""); err != nil {
		t.Fatalf("unconfigured seed must be a no-op, got %v", err)
	}
	if len(dir.added) != 0 {
		t.Error("unconfigured seed must not create profiles")
	}
}

func TestEnsureAdminAccountSurfacesLookupFailure(t *testing.T) {
	dir := &fakeDirectoryWriter{findErr: errors.New("backend unreachable")}

	if err := EnsureAdminAccount(context.Background(), dir, "ops@upm.edu.my", "s3cret!pw", ""); err == nil {
		t.Fatal("lookup failure must surface")
	}
	if len(dir.added) != 0 {
		t.Error("lookup failure must not create profiles")
	}
}
