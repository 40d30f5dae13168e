package usecase

import "courtsync/model"

// The dashboard is never blank: while a collection has no documents (early
// integration, misconfigured backend) the views render a fixed demo dataset.
// Real data always wins; a single real row replaces the whole fallback.

func DemoCourts() []model.Court {
	return []model.Court{
		{ID: "1", Name: "Court 1", Status: model.CourtAvailable},
		{ID: "2", Name: "Court 2", Status: model.CourtAvailable},
		{ID: "3", Name: "Court 3", Status: model.CourtAvailable},
		{ID: "4", Name: "Court 4", Status: model.CourtAvailable},
		{ID: "5", Name: "Court 5", Status: model.CourtAvailable},
		{ID: "6", Name: "Court 6", Status: model.CourtEvent},
	}
}

func DemoActivities() []model.Activity {
	return []model.Activity{
		{ID: "a1", UserName: "Sarah Lee", CourtNumber: 2, TimeAgo: "2 mins ago"},
		{ID: "a2", UserName: "Ahmad Razak", CourtNumber: 4, TimeAgo: "5 mins ago"},
		{ID: "a3", UserName: "Priya Kumar", CourtNumber: 1, TimeAgo: "12 mins ago"},
		{ID: "a4", UserName: "Wei Chen", CourtNumber: 5, TimeAgo: "18 mins ago"},
		{ID: "a5", UserName: "Fatimah Zahra", CourtNumber: 3, TimeAgo: "25 mins ago"},
	}
}

func DemoRequests() []model.EventRequest {
	return []model.EventRequest{
		{
			ID:              "req1",
			RequesterName:   "Ahmad Bin Razak",
			EventName:       "Inter-College Badminton Tournament",
			DateTime:        "15 Jan 2026, 09:00 AM",
			CourtsRequested: []string{"Court 1", "Court 2", "Court 3"},
			Status:          model.RequestPending,
		},
		{
			ID:              "req2",
			RequesterName:   "Sarah J. Lee",
			EventName:       "Faculty of Engineering Friendly",
			DateTime:        "20 Jan 2026, 02:00 PM",
			CourtsRequested: []string{"Court 4", "Court 5"},
			Status:          model.RequestPending,
		},
		{
			ID:              "req3",
			RequesterName:   "Wei Chen",
			EventName:       "Varsity Training Session",
			DateTime:        "25 Jan 2026, 08:30 AM",
			CourtsRequested: []string{"Court 1", "Court 2"},
			Status:          model.RequestPending,
		},
	}
}

// Effective chooses between the latest snapshot and the fallback dataset.
// The fallback is used only when the snapshot is empty.
func Effective[T any](snapshot []T, fallback func() []T) []T {
	if len(snapshot) > 0 {
		return snapshot
	}
	return fallback()
}
