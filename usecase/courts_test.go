package usecase

import (
	"context"
	"errors"
	"testing"

	"courtsync/model"
)

type fakeCourtStore struct {
	courts    map[string]*model.Court
	updateErr error
	fetchErr  error
	updates   int
}

func (f *fakeCourtStore) FindAll(ctx context.Context) ([]model.Court, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var out []model.Court
	for _, c := range f.courts {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCourtStore) FindByID(ctx context.Context, courtID string) (*model.Court, error) {
	if c, ok := f.courts[courtID]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeCourtStore) UpdateStatus(ctx context.Context, courtID string, from, to model.CourtStatus) error {
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	c, ok := f.courts[courtID]
	if !ok || c.Status != from {
		return errors.New("court not found or status changed")
	}
	c.Status = to
	return nil
}

type fakeActivityStore struct {
	entries []*model.Activity
	addErr  error
}

func (f *fakeActivityStore) Add(ctx context.Context, activity *model.Activity) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.entries = append(f.entries, activity)
	return nil
}

func (f *fakeActivityStore) Recent(ctx context.Context, limit int64) ([]model.Activity, error) {
	var out []model.Activity
	for i := len(f.entries) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, *f.entries[i])
	}
	return out, nil
}

func newCourtsService(store *fakeCourtStore, activity *fakeActivityStore) *CourtsService {
	service := &CourtsService{
		Courts:    store,
		Activity:  activity,
		CourtFeed: NewFeed("courts", store.FindAll),
		ActivityFeed: NewFeed("activityLogs", func(ctx context.Context) ([]model.Activity, error) {
			return activity.Recent(ctx, ActivityFeedLimit)
		}),
	}
	return service
}

func courtFixture() *fakeCourtStore {
	return &fakeCourtStore{courts: map[string]*model.Court{
		"c1": {ID: "c1", Name: "Court 1", Status: model.CourtAvailable},
		"c6": {ID: "c6", Name: "Court 6", Status: model.CourtEvent},
	}}
}

func mirrorStatus(t *testing.T, feed *Feed[model.Court], courtID string) model.CourtStatus {
	t.Helper()
	snapshot, _ := feed.Snapshot()
	for _, c := range snapshot {
		if c.ID == courtID {
			return c.Status
		}
	}
	t.Fatalf("court %s not in mirror", courtID)
	return ""
}

func TestToggleLockRoundTrip(t *testing.T) {
	store := courtFixture()
	activity := &fakeActivityStore{}
	service := newCourtsService(store, activity)
	ctx := context.Background()

	if err := service.CourtFeed.Refresh(ctx); err != nil {
		t.Fatal(err)
	}

	court, err := service.ToggleLock(ctx, "c1", model.CourtAvailable, nil)
	if err != nil {
		t.Fatalf("lock failed: %v", err)
	}
	if court.Status != model.CourtLocked {
		t.Errorf("expected Locked, got %s", court.Status)
	}
	if store.courts["c1"].Status != model.CourtLocked {
		t.Error("remote status not updated")
	}
	if mirrorStatus(t, service.CourtFeed, "c1") != model.CourtLocked {
		t.Error("mirror not updated")
	}

	// Second toggle restores the original status: idempotence over pairs.
	court, err = service.ToggleLock(ctx, "c1", model.CourtLocked, nil)
	if err != nil {
		t.Fatalf("unlock failed: %v", err)
	}
	if court.Status != model.CourtAvailable {
		t.Errorf("expected Available, got %s", court.Status)
	}

	if len(activity.entries) != 2 {
		t.Fatalf("expected one audit entry per transition, got %d", len(activity.entries))
	}
	if activity.entries[0].Action != "locked" || activity.entries[1].Action != "unlocked" {
		t.Errorf("unexpected audit actions: %s, %s", activity.entries[0].Action, activity.entries[1].Action)
	}
	if activity.entries[0].CourtNumber != 1 {
		t.Errorf("expected court number 1, got %d", activity.entries[0].CourtNumber)
	}
}

func TestToggleLockRollbackOnFailure(t *testing.T) {
	store := courtFixture()
	store.updateErr = errors.New("write failed")
	activity := &fakeActivityStore{}
	service := newCourtsService(store, activity)

	if err := service.CourtFeed.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	_, err := service.ToggleLock(context.Background(), "c1", model.CourtAvailable, nil)
	if err == nil {
		t.Fatal("expected toggle error")
	}

	if got := mirrorStatus(t, service.CourtFeed, "c1"); got != model.CourtAvailable {
		t.Errorf("mirror must revert to pre-toggle value, got %s", got)
	}
	if store.courts["c1"].Status != model.CourtAvailable {
		t.Errorf("remote status must be unchanged, got %s", store.courts["c1"].Status)
	}
	if len(activity.entries) != 0 {
		t.Error("failed toggle must not produce an audit entry")
	}
}

func TestToggleLockConcurrentWriteRejected(t *testing.T) {
	store := courtFixture()
	activity := &fakeActivityStore{}
	service := newCourtsService(store, activity)
	ctx := context.Background()

	if err := service.CourtFeed.Refresh(ctx); err != nil {
		t.Fatal(err)
	}

	// Another writer flips the court after the mirror was loaded. The
	// conditional write must miss and the toggle must not clobber it.
	store.courts["c1"].Status = model.CourtLocked

	_, err := service.ToggleLock(ctx, "c1", model.CourtAvailable, nil)
	if err == nil {
		t.Fatal("expected conditional write to reject the toggle")
	}

	if store.courts["c1"].Status != model.CourtLocked {
		t.Errorf("concurrent writer's status must survive, got %s", store.courts["c1"].Status)
	}
	if got := mirrorStatus(t, service.CourtFeed, "c1"); got != model.CourtAvailable {
		t.Errorf("mirror must revert to its pre-toggle value, got %s", got)
	}
	if len(activity.entries) != 0 {
		t.Error("rejected toggle must not produce an audit entry")
	}
}

func TestToggleLockEventCourtExcluded(t *testing.T) {
	store := courtFixture()
	service := newCourtsService(store, &fakeActivityStore{})

	_, err := service.ToggleLock(context.Background(), "c6", model.CourtEvent, nil)
	if !errors.Is(err, ErrCourtInEvent) {
		t.Fatalf("expected ErrCourtInEvent, got %v", err)
	}
	if store.updates != 0 {
		t.Error("Event court must never reach the store")
	}
}

func TestToggleLockStaleStatus(t *testing.T) {
	store := courtFixture()
	service := newCourtsService(store, &fakeActivityStore{})

	_, err := service.ToggleLock(context.Background(), "c1", model.CourtLocked, nil)
	if !errors.Is(err, ErrStaleToggle) {
		t.Fatalf("expected ErrStaleToggle, got %v", err)
	}
	if store.updates != 0 {
		t.Error("stale toggle must never reach the store")
	}
}

func TestToggleLockUnknownCourt(t *testing.T) {
	service := newCourtsService(courtFixture(), &fakeActivityStore{})

	_, err := service.ToggleLock(context.Background(), "missing", model.CourtAvailable, nil)
	if !errors.Is(err, ErrCourtUnknown) {
		t.Fatalf("expected ErrCourtUnknown, got %v", err)
	}
}

func TestListFallsBackWhenEmpty(t *testing.T) {
	store := &fakeCourtStore{courts: map[string]*model.Court{}}
	service := newCourtsService(store, &fakeActivityStore{})

	courts := service.List(context.Background())
	if len(courts) != 6 {
		t.Fatalf("empty collection must render the fallback dataset, got %d", len(courts))
	}
}

func TestListFallsBackOnFetchError(t *testing.T) {
	store := &fakeCourtStore{fetchErr: errors.New("backend unreachable")}
	service := newCourtsService(store, &fakeActivityStore{})

	courts := service.List(context.Background())
	if len(courts) != 6 {
		t.Fatalf("fetch failure must degrade to the fallback, got %d", len(courts))
	}
}

func TestRecentActivityFallback(t *testing.T) {
	service := newCourtsService(courtFixture(), &fakeActivityStore{})

	activities := service.RecentActivity(context.Background())
	if len(activities) != 5 {
		t.Fatalf("expected fallback activities, got %d", len(activities))
	}
}
