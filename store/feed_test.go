package store

import (
	"testing"

	"cloud.google.com/go/firestore"

	"taskflow/model"
)

func feedTask(status string) model.Task {
	return model.Task{
		TaskID:     "t1",
		Title:      "Write report",
		AssignedTo: "u1",
		Priority:   model.PriorityHigh,
		Status:     status,
	}
}

func TestNextEventBackfillOnlySeedsCache(t *testing.T) {
	seen := make(map[string]model.Task)

	_, ok := nextEvent(seen, firestore.DocumentAdded, "t1", feedTask(model.StatusPending), true)
	if ok {
		t.Fatal("backfill documents must not emit events")
	}
	if _, cached := seen["t1"]; !cached {
		t.Fatal("backfill must seed the previous-state cache")
	}
}

func TestNextEventAddedAfterBackfill(t *testing.T) {
	seen := make(map[string]model.Task)

	ev, ok := nextEvent(seen, firestore.DocumentAdded, "t1", feedTask(model.StatusPending), false)
	if !ok {
		t.Fatal("expected a created event")
	}
	if ev.Type != EventCreated || ev.After == nil || ev.After.Title != "Write report" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.Before != nil {
		t.Fatal("created events carry no before snapshot")
	}
}

func TestNextEventModifiedCarriesBeforeAndAfter(t *testing.T) {
	seen := map[string]model.Task{"t1": feedTask(model.StatusInProgress)}

	ev, ok := nextEvent(seen, firestore.DocumentModified, "t1", feedTask(model.StatusCompleted), false)
	if !ok || ev.Type != EventUpdated {
		t.Fatalf("expected an updated event, got %+v", ev)
	}
	if ev.Before == nil || ev.Before.Status != model.StatusInProgress {
		t.Fatalf("before snapshot lost: %+v", ev.Before)
	}
	if ev.After == nil || ev.After.Status != model.StatusCompleted {
		t.Fatalf("after snapshot lost: %+v", ev.After)
	}
	if seen["t1"].Status != model.StatusCompleted {
		t.Fatal("cache must advance to the new state")
	}
}

func TestNextEventRemovedUsesCachedState(t *testing.T) {
	seen := map[string]model.Task{"t1": feedTask(model.StatusInProgress)}

	ev, ok := nextEvent(seen, firestore.DocumentRemoved, "t1", feedTask(model.StatusInProgress), false)
	if !ok || ev.Type != EventDeleted {
		t.Fatalf("expected a deleted event, got %+v", ev)
	}
	if ev.Before == nil || ev.Before.Status != model.StatusInProgress {
		t.Fatalf("deleted events must carry the last known state: %+v", ev.Before)
	}
	if _, cached := seen["t1"]; cached {
		t.Fatal("removed documents must leave the cache")
	}
}

func TestNextEventSequence(t *testing.T) {
	seen := make(map[string]model.Task)

	if _, ok := nextEvent(seen, firestore.DocumentAdded, "t1", feedTask(model.StatusPending), true); ok {
		t.Fatal("backfill emitted an event")
	}

	ev, ok := nextEvent(seen, firestore.DocumentModified, "t1", feedTask(model.StatusCompleted), false)
	if !ok || ev.Type != EventUpdated {
		t.Fatalf("expected update, got %+v", ev)
	}
	if ev.Before == nil || ev.Before.Status != model.StatusPending {
		t.Fatalf("update must see the backfilled state as before: %+v", ev.Before)
	}

	ev, ok = nextEvent(seen, firestore.DocumentRemoved, "t1", feedTask(model.StatusCompleted), false)
	if !ok || ev.Type != EventDeleted || ev.Before.Status != model.StatusCompleted {
		t.Fatalf("expected delete with final state, got %+v", ev)
	}
}
