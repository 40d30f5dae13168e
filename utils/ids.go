package utils

import "github.com/google/uuid"

// GenerateID returns a random document id for the courts, eventRequests
// and activityLogs collections.
func GenerateID() string {
	return uuid.New().String()
}
