package model

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestDeclined RequestStatus = "declined"
)

type EventRequest struct {
	ID              string        `bson:"_id" json:"id"`
	RequesterName   string        `bson:"requesterName" json:"requesterName"`
	EventName       string        `bson:"eventName" json:"eventName"`
	DateTime        string        `bson:"dateTime" json:"dateTime"`
	CourtsRequested []string      `bson:"courtsRequested" json:"courtsRequested"`
	Status          RequestStatus `bson:"status" json:"status"`
}
