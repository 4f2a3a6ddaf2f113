package store

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskflow/model"
)

type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// ChangeEvent describes one committed mutation of a task document. Before is
// set for updates and deletes, After for creates and updates.
type ChangeEvent struct {
	Type   EventType
	TaskID string
	Before *model.Task
	After  *model.Task
}

// Listen opens a snapshot listener on the tasks collection and emits one
// ChangeEvent per mutation until ctx is canceled, at which point the returned
// channel is closed.
//
// The very first listener snapshot is the backfill of documents that already
// exist; it only seeds the previous-state cache and emits nothing, so
// restarting the process does not re-notify every task in the store.
func (s *TaskStore) Listen(ctx context.Context) <-chan ChangeEvent {
	events := make(chan ChangeEvent)

	go func() {
		defer close(events)

		snaps := s.client.Collection(tasksCollection).Snapshots(ctx)
		defer snaps.Stop()

		seen := make(map[string]model.Task)
		backfill := true
		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					log.Printf("store: task listener stopped: %v", err)
				}
				return
			}
			for _, change := range snap.Changes {
				task, decodeErr := decodeTask(change.Doc)
				if decodeErr != nil {
					log.Printf("store: malformed task document in change feed: %v", decodeErr)
				}
				ev, ok := nextEvent(seen, change.Kind, change.Doc.Ref.ID, task, backfill)
				if !ok {
					continue
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
			backfill = false
		}
	}()

	return events
}

// nextEvent folds one document change into the previous-state cache and
// derives the event to emit, if any. Kept free of Firestore types beyond the
// change kind so the translation is testable on its own.
func nextEvent(seen map[string]model.Task, kind firestore.DocumentChangeKind, taskID string, task model.Task, backfill bool) (ChangeEvent, bool) {
	switch kind {
	case firestore.DocumentAdded:
		seen[taskID] = task
		if backfill {
			return ChangeEvent{}, false
		}
		after := task
		return ChangeEvent{Type: EventCreated, TaskID: taskID, After: &after}, true

	case firestore.DocumentModified:
		before, had := seen[taskID]
		seen[taskID] = task
		after := task
		ev := ChangeEvent{Type: EventUpdated, TaskID: taskID, After: &after}
		if had {
			ev.Before = &before
		}
		return ev, true

	case firestore.DocumentRemoved:
		before, had := seen[taskID]
		delete(seen, taskID)
		if !had {
			before = task
		}
		return ChangeEvent{Type: EventDeleted, TaskID: taskID, Before: &before}, true
	}
	return ChangeEvent{}, false
}
