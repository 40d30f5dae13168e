package handler

import (
	"log"

	"courtsync/dto"
	"courtsync/middleware"
	"courtsync/usecase"
	"courtsync/utils"

	"github.com/gin-gonic/gin"
)

// LogoutHandler clears every session source: the persisted demo record, the
// token pair and the sign-in audit records. A signed-in identity must never
// be left dangling after logout.
func LogoutHandler(c *gin.Context, resolver *usecase.SessionResolver, sessions SessionAuditRepo) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var logoutReq dto.LogoutRequest
	// Refresh token is optional; ignore malformed bodies.
	_ = c.ShouldBindJSON(&logoutReq)

	accessToken := c.GetString("access_token")
	resolver.Logout(c.Request.Context(), accessToken, logoutReq.RefreshToken)

	if err := sessions.EndUserSessions(c.Request.Context(), session.UserID); err != nil {
		log.Printf("failed to end sessions for %s: %v", session.UserID, err)
		utils.TrackError("session", "end_sessions_failed")
	}

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}
