package handler

import (
	"context"
	"errors"
	"log"
	"time"

	"courtsync/dto"
	"courtsync/middleware"
	"courtsync/model"
	"courtsync/usecase"
	"courtsync/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionAuditRepo is the slice of the sessions collection the auth
// handlers need.
type SessionAuditRepo interface {
	CreateSession(ctx context.Context, session *model.Session) error
	ActiveSessions(ctx context.Context, userID string) ([]*model.Session, error)
	EndUserSessions(ctx context.Context, userID string) error
}

func LoginHandler(c *gin.Context, resolver *usecase.SessionResolver, sessions SessionAuditRepo) {
	var loginReq dto.LoginRequest

	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "Invalid Request")
		return
	}

	result, err := resolver.Login(c.Request.Context(), loginReq.Email, loginReq.Password, loginReq.TwoFactorCode)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			utils.Unauthorized(c, "Invalid email or password. Use demo: admin@upm.edu.my / admin123")
		case errors.Is(err, usecase.ErrTwoFactorInvalid):
			utils.Unauthorized(c, "Invalid 2FA code")
		case errors.Is(err, usecase.ErrNotAdmin):
			utils.Forbidden(c, "Administrator access required")
		default:
			utils.InternalError(c, "Failed to sign in")
		}
		return
	}

	if result.Requires2FA {
		utils.Success(c, gin.H{
			"requires_2fa": true,
			"message":      "2FA code required",
		})
		return
	}

	recordSignIn(c, sessions, result.Session)

	utils.Success(c, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"refresh": result.RefreshToken,
		"user": gin.H{
			"uid":         result.Session.UserID,
			"email":       result.Session.Email,
			"displayName": result.Session.DisplayName,
			"role":        result.Session.Role,
			"origin":      result.Session.Origin,
		},
	})
}

func GoogleSignInHandler(c *gin.Context, resolver *usecase.SessionResolver) {
	var req dto.GoogleSignInRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	if _, err := resolver.GoogleSignIn(c.Request.Context(), req.IDToken); err != nil {
		utils.Unauthorized(c, "Google sign-in requires a configured identity provider. Try the demo login.")
		return
	}
}

// recordSignIn appends a sign-in audit record. Failure never blocks the
// login itself.
func recordSignIn(c *gin.Context, sessions SessionAuditRepo, authSession *model.AuthSession) {
	record := &model.Session{
		SessionID:      uuid.New().String(),
		UserID:         authSession.UserID,
		CreatedAt:      time.Now(),
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		LastActivityAt: time.Now(),
		DeviceInfo:     utils.DeviceInfo(c.Request.UserAgent()),
		IPAddress:      c.ClientIP(),
		IsActive:       true,
	}

	if err := sessions.CreateSession(c.Request.Context(), record); err != nil {
		log.Printf("failed to record sign-in for %s: %v", authSession.UserID, err)
		utils.TrackError("session", "audit_record_failed")
	}
}

func GetActiveSessions(c *gin.Context, sessions SessionAuditRepo) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	active, err := sessions.ActiveSessions(c.Request.Context(), session.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	utils.Success(c, gin.H{"sessions": active})
}
