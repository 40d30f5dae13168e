package model

import "time"

type SessionOrigin string

const (
	OriginDemo     SessionOrigin = "demo"
	OriginVerified SessionOrigin = "verified"
)

// AuthSession is the resolved identity used to gate access. Exactly one
// source populates it: the persisted demo record, or a verified directory
// profile. It lives in process memory for the duration of a request.
type AuthSession struct {
	UserID      string        `json:"uid"`
	Email       string        `json:"email"`
	DisplayName string        `json:"displayName"`
	Role        Role          `json:"role"`
	Origin      SessionOrigin `json:"origin"`
}

func (s *AuthSession) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// Session is a sign-in audit record in the sessions collection.
type Session struct {
	SessionID      string    `bson:"session_id" json:"session_id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt      time.Time `bson:"expires_at" json:"expires_at"`
	LastActivityAt time.Time `bson:"last_activity_at" json:"last_activity_at"`
	DeviceInfo     string    `bson:"device_info" json:"device_info"`
	IPAddress      string    `bson:"ip_address" json:"ip_address"`
	IsActive       bool      `bson:"is_active" json:"is_active"`
}
