package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"courtsync/model"
	"courtsync/utils"
)

var (
	ErrCourtInEvent = errors.New("court is reserved for an event")
	ErrStaleToggle  = errors.New("court status changed, refresh and retry")
	ErrCourtUnknown = errors.New("court not found")
)

type CourtStore interface {
	FindAll(ctx context.Context) ([]model.Court, error)
	FindByID(ctx context.Context, courtID string) (*model.Court, error)
	UpdateStatus(ctx context.Context, courtID string, from, to model.CourtStatus) error
}

type ActivityStore interface {
	Add(ctx context.Context, activity *model.Activity) error
	Recent(ctx context.Context, limit int64) ([]model.Activity, error)
}

// ActivityFeedLimit is how many audit entries the dashboard shows.
const ActivityFeedLimit = 8

type CourtsService struct {
	Courts   CourtStore
	Activity ActivityStore

	CourtFeed    *Feed[model.Court]
	ActivityFeed *Feed[model.Activity]
}

// List returns the effective court view: the live mirror when it has data,
// the demo dataset otherwise. A failed fetch degrades to the fallback
// instead of blocking the page.
func (s *CourtsService) List(ctx context.Context) []model.Court {
	snapshot, loaded := s.CourtFeed.Snapshot()
	if !loaded {
		if err := s.CourtFeed.Refresh(ctx); err != nil {
			log.Printf("courts fetch failed, using fallback: %v", err)
			return DemoCourts()
		}
		snapshot, _ = s.CourtFeed.Snapshot()
	}
	return Effective(snapshot, DemoCourts)
}

// RecentActivity returns the effective activity feed, newest first.
func (s *CourtsService) RecentActivity(ctx context.Context) []model.Activity {
	snapshot, loaded := s.ActivityFeed.Snapshot()
	if !loaded {
		if err := s.ActivityFeed.Refresh(ctx); err != nil {
			log.Printf("activity fetch failed, using fallback: %v", err)
			return DemoActivities()
		}
		snapshot, _ = s.ActivityFeed.Snapshot()
	}
	return Effective(snapshot, DemoActivities)
}

// ToggleLock flips a court between Available and Locked. The mirror is
// updated before the write for immediate feedback and reverted when the
// write fails. Success appends an audit entry; an audit failure is logged
// but does not undo a committed status change.
func (s *CourtsService) ToggleLock(ctx context.Context, courtID string, currentStatus model.CourtStatus, actor *model.AuthSession) (*model.Court, error) {
	court := s.findCourt(ctx, courtID)
	if court == nil {
		return nil, ErrCourtUnknown
	}
	if !court.Lockable() {
		return nil, ErrCourtInEvent
	}
	if court.Status != currentStatus {
		return nil, ErrStaleToggle
	}

	oldStatus := court.Status
	newStatus := court.Toggled()
	action := "unlocked"
	if newStatus == model.CourtLocked {
		action = "locked"
	}

	s.applyStatus(courtID, newStatus)

	if err := s.Courts.UpdateStatus(ctx, courtID, oldStatus, newStatus); err != nil {
		log.Printf("failed to update court %s, reverting: %v", courtID, err)
		s.applyStatus(courtID, oldStatus)
		utils.TrackCourtToggle(action, "rollback")
		return nil, err
	}

	utils.TrackCourtToggle(action, "success")

	userName := "Admin"
	if actor != nil && actor.DisplayName != "" {
		userName = actor.DisplayName
	}

	activity := &model.Activity{
		ID:          utils.GenerateID(),
		UserName:    userName,
		CourtNumber: parseCourtNumber(court.Name),
		Timestamp:   time.Now(),
		TimeAgo:     "Just now",
		Action:      action,
	}
	if err := s.Activity.Add(ctx, activity); err != nil {
		log.Printf("failed to record activity for court %s: %v", courtID, err)
	}

	updated := *court
	updated.Status = newStatus
	return &updated, nil
}

func (s *CourtsService) findCourt(ctx context.Context, courtID string) *model.Court {
	snapshot, loaded := s.CourtFeed.Snapshot()
	if loaded {
		for i := range snapshot {
			if snapshot[i].ID == courtID {
				return &snapshot[i]
			}
		}
	}

	court, err := s.Courts.FindByID(ctx, courtID)
	if err != nil {
		log.Printf("court lookup failed for %s: %v", courtID, err)
		return nil
	}
	return court
}

func (s *CourtsService) applyStatus(courtID string, status model.CourtStatus) {
	s.CourtFeed.ApplyLocal(func(courts []model.Court) []model.Court {
		for i := range courts {
			if courts[i].ID == courtID {
				courts[i].Status = status
			}
		}
		return courts
	})
}

func parseCourtNumber(name string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(name, "Court "))
	if err != nil {
		return 0
	}
	return n
}
