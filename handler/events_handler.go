package handler

import (
	"courtsync/usecase"
	"courtsync/utils"

	"github.com/gin-gonic/gin"
)

func GetPendingRequestsHandler(c *gin.Context, service *usecase.EventRequestsService) {
	utils.Success(c, gin.H{"requests": service.Pending(c.Request.Context())})
}

func ApproveRequestHandler(c *gin.Context, service *usecase.EventRequestsService) {
	if err := service.Approve(c.Request.Context(), c.Param("id")); err != nil {
		utils.InternalError(c, "Failed to approve request")
		return
	}
	utils.Success(c, gin.H{"message": "Request approved"})
}

func DeclineRequestHandler(c *gin.Context, service *usecase.EventRequestsService) {
	if err := service.Decline(c.Request.Context(), c.Param("id")); err != nil {
		utils.InternalError(c, "Failed to decline request")
		return
	}
	utils.Success(c, gin.H{"message": "Request declined"})
}
