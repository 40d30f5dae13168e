package handler

import (
	"courtsync/dto"
	"courtsync/model"
	"courtsync/utils"

	"github.com/gin-gonic/gin"
)

// The management page is a read-only projection: an illustrative roster and
// stat cards, not backed by live mutation.
var memberRoster = []model.UserRow{
	{Name: "Ahmad Razak", Email: "ahmad@upm.edu.my", Role: "UPM Member", JoinDate: "Jan 2024"},
	{Name: "Sarah Lee", Email: "sarah@upm.edu.my", Role: "UPM Member", JoinDate: "Jan 2024"},
	{Name: "Priya Kumar", Email: "priya@upm.edu.my", Role: "UPM Member", JoinDate: "Feb 2024"},
	{Name: "Wei Chen", Email: "wei@upm.edu.my", Role: "UPM Member", JoinDate: "Feb 2024"},
	{Name: "Fatimah Zahra", Email: "fatimah@upm.edu.my", Role: "UPM Member", JoinDate: "Mar 2024"},
	{Name: "John Smith", Email: "john@gmail.com", Role: "Guest", JoinDate: "Mar 2024"},
	{Name: "Emily Davis", Email: "emily@yahoo.com", Role: "Guest", JoinDate: "Apr 2024"},
	{Name: "Michael Brown", Email: "michael@outlook.com", Role: "Guest", JoinDate: "Apr 2024"},
	{Name: "Lisa Wong", Email: "lisa@upm.edu.my", Role: "UPM Member", JoinDate: "May 2024"},
	{Name: "David Tan", Email: "david@gmail.com", Role: "Guest", JoinDate: "May 2024"},
}

func GetUsersHandler(c *gin.Context) {
	utils.Success(c, gin.H{
		"users": memberRoster,
		"stats": dto.UserStatsResponse{
			TotalBookingsToday: 24,
			ActiveEvents:       2,
			MostUsedCourt:      "Court 3",
		},
	})
}
