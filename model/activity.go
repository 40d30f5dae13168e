package model

import "time"

// Activity is one row of the live activity feed. Entries are append-only;
// the dashboard shows the eight most recent by timestamp.
type Activity struct {
	ID          string    `bson:"_id" json:"id"`
	UserName    string    `bson:"userName" json:"userName"`
	CourtNumber int       `bson:"courtNumber" json:"courtNumber"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	TimeAgo     string    `bson:"timeAgo" json:"timeAgo"`
	Action      string    `bson:"action" json:"action"`
}
