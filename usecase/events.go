package usecase

import (
	"context"
	"log"

	"courtsync/model"
	"courtsync/utils"
)

type EventRequestStore interface {
	FindPending(ctx context.Context) ([]model.EventRequest, error)
	Approve(ctx context.Context, requestID string) error
	Decline(ctx context.Context, requestID string) error
}

type EventRequestsService struct {
	Requests EventRequestStore
	Feed     *Feed[model.EventRequest]
}

// Pending returns the effective pending-request view.
func (s *EventRequestsService) Pending(ctx context.Context) []model.EventRequest {
	snapshot, loaded := s.Feed.Snapshot()
	if !loaded {
		if err := s.Feed.Refresh(ctx); err != nil {
			log.Printf("event requests fetch failed, using fallback: %v", err)
			return DemoRequests()
		}
		snapshot, _ = s.Feed.Snapshot()
	}
	return Effective(snapshot, DemoRequests)
}

// Approve commits the decision remotely first, then drops the request from
// the pending mirror. Unlike the court toggle there is no optimistic local
// change, so a failure leaves the item visibly pending.
func (s *EventRequestsService) Approve(ctx context.Context, requestID string) error {
	if err := s.Requests.Approve(ctx, requestID); err != nil {
		log.Printf("failed to approve request %s: %v", requestID, err)
		utils.TrackRequestDecision("approved", "failure")
		return err
	}

	s.removeFromPending(requestID)
	utils.TrackRequestDecision("approved", "success")
	return nil
}

// Decline is terminal; there is no un-decline path.
func (s *EventRequestsService) Decline(ctx context.Context, requestID string) error {
	if err := s.Requests.Decline(ctx, requestID); err != nil {
		log.Printf("failed to decline request %s: %v", requestID, err)
		utils.TrackRequestDecision("declined", "failure")
		return err
	}

	s.removeFromPending(requestID)
	utils.TrackRequestDecision("declined", "success")
	return nil
}

func (s *EventRequestsService) removeFromPending(requestID string) {
	s.Feed.ApplyLocal(func(requests []model.EventRequest) []model.EventRequest {
		filtered := requests[:0]
		for _, r := range requests {
			if r.ID != requestID {
				filtered = append(filtered, r)
			}
		}
		return filtered
	})
}
