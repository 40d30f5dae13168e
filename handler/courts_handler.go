package handler

import (
	"errors"

	"courtsync/dto"
	"courtsync/middleware"
	"courtsync/usecase"
	"courtsync/utils"

	"github.com/gin-gonic/gin"
)

func GetCourtsHandler(c *gin.Context, service *usecase.CourtsService) {
	utils.Success(c, gin.H{"courts": service.List(c.Request.Context())})
}

func GetActivityHandler(c *gin.Context, service *usecase.CourtsService) {
	utils.Success(c, gin.H{"activities": service.RecentActivity(c.Request.Context())})
}

func ToggleLockHandler(c *gin.Context, service *usecase.CourtsService) {
	var req dto.ToggleLockRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	courtID := c.Param("id")
	session := middleware.SessionFromContext(c)

	court, err := service.ToggleLock(c.Request.Context(), courtID, req.CurrentStatus, session)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCourtUnknown):
			utils.NotFound(c, "Court not found")
		case errors.Is(err, usecase.ErrCourtInEvent):
			utils.Conflict(c, "Court is in use for an event")
		case errors.Is(err, usecase.ErrStaleToggle):
			utils.Conflict(c, "Court status changed, refresh and retry")
		default:
			utils.InternalError(c, "Failed to update court status")
		}
		return
	}

	utils.Success(c, dto.ToggleLockResponse{Court: *court})
}
