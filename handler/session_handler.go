package handler

import (
	"courtsync/middleware"
	"courtsync/utils"

	"github.com/gin-gonic/gin"
)

// GetSessionHandler is what the dashboard calls on load to end its loading
// state: it answers with the resolved session for the presented token.
func GetSessionHandler(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	if session == nil {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	utils.Success(c, gin.H{"session": session})
}
