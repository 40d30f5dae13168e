package model

type CourtStatus string

const (
	CourtAvailable CourtStatus = "Available"
	CourtEvent     CourtStatus = "Event"
	CourtLocked    CourtStatus = "Locked"
)

type Court struct {
	ID     string      `bson:"_id" json:"id"`
	Name   string      `bson:"name" json:"name"`
	Status CourtStatus `bson:"status" json:"status"`
}

// Lockable reports whether the admin toggle may act on the court.
// Event status is managed by approved events, not the toggle.
func (c Court) Lockable() bool {
	return c.Status == CourtAvailable || c.Status == CourtLocked
}

// Toggled returns the opposite lock state. Callers must check Lockable first.
func (c Court) Toggled() CourtStatus {
	if c.Status == CourtAvailable {
		return CourtLocked
	}
	return CourtAvailable
}
