package dto

import "courtsync/model"

type ToggleLockRequest struct {
	// Status the caller believes the court currently has. The toggle is
	// rejected when it no longer matches, so a stale tab cannot flip a
	// court that changed underneath it.
	CurrentStatus model.CourtStatus `json:"current_status" binding:"required"`
}

type ToggleLockResponse struct {
	Court model.Court `json:"court"`
}

type UserStatsResponse struct {
	TotalBookingsToday int    `json:"total_bookings_today"`
	ActiveEvents       int    `json:"active_events"`
	MostUsedCourt      string `json:"most_used_court"`
}
