package usecase

import (
	"testing"

	"courtsync/model"
)

func TestEffectiveUsesFallbackOnlyWhenEmpty(t *testing.T) {
	got := Effective(nil, DemoCourts)
	if len(got) != 6 {
		t.Fatalf("expected 6 fallback courts, got %d", len(got))
	}
	if got[5].Name != "Court 6" || got[5].Status != model.CourtEvent {
		t.Errorf("fallback court 6 should be in Event status, got %+v", got[5])
	}

	real := []model.Court{{ID: "c9", Name: "Court 9", Status: model.CourtLocked}}
	got = Effective(real, DemoCourts)
	if len(got) != 1 {
		t.Fatalf("one real record must fully replace the fallback, got %d rows", len(got))
	}
	if got[0].ID != "c9" {
		t.Errorf("expected real record, got %+v", got[0])
	}
}

func TestDemoDatasets(t *testing.T) {
	if len(DemoActivities()) != 5 {
		t.Errorf("expected 5 fallback activities, got %d", len(DemoActivities()))
	}

	requests := DemoRequests()
	if len(requests) != 3 {
		t.Fatalf("expected 3 fallback requests, got %d", len(requests))
	}
	for _, r := range requests {
		if r.Status != model.RequestPending {
			t.Errorf("fallback request %s should be pending, got %s", r.ID, r.Status)
		}
	}
}
