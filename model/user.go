package model

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is a directory profile in the users collection. Only profiles with
// RoleAdmin may hold a dashboard session.
type User struct {
	UserID           string    `bson:"user_id" json:"user_id"`
	Email            string    `bson:"email" json:"email" validate:"required,email"`
	DisplayName      string    `bson:"display_name" json:"display_name"`
	PasswordHash     string    `bson:"password" json:"-"`
	Role             Role      `bson:"role" json:"role"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	TwoFactorSecret  string    `bson:"two_factor_secret" json:"-"`
	TwoFactorEnabled bool      `bson:"two_factor_enabled" json:"two_factor_enabled"`
}

// UserRow is the read-only roster shown on the management page.
type UserRow struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinDate string `json:"joinDate"`
}
