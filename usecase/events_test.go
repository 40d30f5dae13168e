package usecase

import (
	"context"
	"errors"
	"testing"

	"courtsync/model"
)

type fakeRequestStore struct {
	requests   map[string]*model.EventRequest
	approveErr error
	declineErr error
}

func requestFixture() *fakeRequestStore {
	return &fakeRequestStore{requests: map[string]*model.EventRequest{
		"req1": {ID: "req1", RequesterName: "Ahmad Bin Razak", Status: model.RequestPending},
		"req2": {ID: "req2", RequesterName: "Sarah J. Lee", Status: model.RequestPending},
	}}
}

func (f *fakeRequestStore) FindPending(ctx context.Context) ([]model.EventRequest, error) {
	var out []model.EventRequest
	for _, r := range f.requests {
		if r.Status == model.RequestPending {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRequestStore) Approve(ctx context.Context, requestID string) error {
	if f.approveErr != nil {
		return f.approveErr
	}
	r, ok := f.requests[requestID]
	if !ok || r.Status != model.RequestPending {
		return errors.New("pending request not found")
	}
	r.Status = model.RequestApproved
	return nil
}

func (f *fakeRequestStore) Decline(ctx context.Context, requestID string) error {
	if f.declineErr != nil {
		return f.declineErr
	}
	r, ok := f.requests[requestID]
	if !ok || r.Status != model.RequestPending {
		return errors.New("pending request not found")
	}
	r.Status = model.RequestDeclined
	return nil
}

func newEventsService(store *fakeRequestStore) *EventRequestsService {
	return &EventRequestsService{
		Requests: store,
		Feed:     NewFeed("eventRequests", store.FindPending),
	}
}

func pendingIDs(service *EventRequestsService) map[string]bool {
	snapshot, _ := service.Feed.Snapshot()
	ids := make(map[string]bool)
	for _, r := range snapshot {
		ids[r.ID] = true
	}
	return ids
}

func TestApproveRemovesFromPending(t *testing.T) {
	store := requestFixture()
	service := newEventsService(store)
	ctx := context.Background()

	if err := service.Feed.Refresh(ctx); err != nil {
		t.Fatal(err)
	}

	if err := service.Approve(ctx, "req1"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	if store.requests["req1"].Status != model.RequestApproved {
		t.Errorf("stored status should be approved, got %s", store.requests["req1"].Status)
	}
	ids := pendingIDs(service)
	if ids["req1"] {
		t.Error("approved request must leave the pending view")
	}
	if !ids["req2"] {
		t.Error("other pending requests must remain")
	}
}

func TestDeclineRemovesFromPending(t *testing.T) {
	store := requestFixture()
	service := newEventsService(store)
	ctx := context.Background()

	if err := service.Feed.Refresh(ctx); err != nil {
		t.Fatal(err)
	}

	if err := service.Decline(ctx, "req2"); err != nil {
		t.Fatalf("decline failed: %v", err)
	}

	if store.requests["req2"].Status != model.RequestDeclined {
		t.Errorf("stored status should be declined, got %s", store.requests["req2"].Status)
	}
	if pendingIDs(service)["req2"] {
		t.Error("declined request must leave the pending view")
	}
}

func TestDecisionFailureLeavesItemPending(t *testing.T) {
	store := requestFixture()
	store.approveErr = errors.New("write failed")
	store.declineErr = errors.New("write failed")
	service := newEventsService(store)
	ctx := context.Background()

	if err := service.Feed.Refresh(ctx); err != nil {
		t.Fatal(err)
	}

	if err := service.Approve(ctx, "req1"); err == nil {
		t.Fatal("expected approve error")
	}
	if err := service.Decline(ctx, "req2"); err == nil {
		t.Fatal("expected decline error")
	}

	// No local mutation happens before remote confirmation.
	ids := pendingIDs(service)
	if !ids["req1"] || !ids["req2"] {
		t.Errorf("failed decisions must leave items pending, got %v", ids)
	}
	if store.requests["req1"].Status != model.RequestPending {
		t.Error("stored status must be unchanged on failure")
	}
}

func TestPendingFallback(t *testing.T) {
	service := newEventsService(&fakeRequestStore{requests: map[string]*model.EventRequest{}})

	requests := service.Pending(context.Background())
	if len(requests) != 3 {
		t.Fatalf("empty collection must render the fallback requests, got %d", len(requests))
	}
}
