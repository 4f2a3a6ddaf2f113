// Package realtime keeps role-filtered task views in step with the store.
//
// Each subscriber gets a full replacement snapshot of its visible tasks on
// every store change, never an incremental diff. This feeds dashboard views
// and is independent of the notification pipeline.
package realtime

import (
	"context"
	"log"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskflow/model"
)

const tasksCollection = "tasks"

// Viewer identifies a subscriber. Admins see every task; everyone else sees
// only tasks assigned to them.
type Viewer struct {
	UID  string
	Role string
}

// SnapshotFunc receives the complete ordered task list visible to the viewer.
// Consumers must treat each call as authoritative and discard prior state.
type SnapshotFunc func(tasks []model.Task)

type Sync struct {
	client *firestore.Client
}

func NewSync(client *firestore.Client) *Sync {
	return &Sync{client: client}
}

// Subscribe starts streaming snapshots for the viewer, ordered by creation
// time descending, until the returned subscription is canceled.
func (s *Sync) Subscribe(viewer Viewer, onSnapshot SnapshotFunc) *Subscription {
	ctx, cancel := context.WithCancel(context.Background())
	sub := &Subscription{cancel: cancel}

	query := s.client.Collection(tasksCollection).Query
	if viewer.Role != model.RoleAdmin {
		query = query.Where("assignedTo", "==", viewer.UID)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	go func() {
		snaps := query.Snapshots(ctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					log.Printf("realtime: snapshot listener for %s stopped: %v", viewer.UID, err)
				}
				return
			}
			tasks, err := readSnapshot(snap)
			if err != nil {
				log.Printf("realtime: reading snapshot for %s: %v", viewer.UID, err)
				continue
			}
			sub.deliver(onSnapshot, tasks)
		}
	}()

	return sub
}

func readSnapshot(snap *firestore.QuerySnapshot) ([]model.Task, error) {
	var tasks []model.Task
	for {
		doc, err := snap.Documents.Next()
		if err == iterator.Done {
			return tasks, nil
		}
		if err != nil {
			return nil, err
		}
		var t model.Task
		if err := doc.DataTo(&t); err != nil {
			continue
		}
		t.TaskID = doc.Ref.ID
		tasks = append(tasks, t)
	}
}

// Subscription is one live view. Cancel is safe to call while a snapshot
// delivery is in flight: it waits for that delivery to finish, and no
// callback runs after Cancel returns.
type Subscription struct {
	mu     sync.Mutex
	closed bool
	cancel context.CancelFunc
}

func (s *Subscription) deliver(fn SnapshotFunc, tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	fn(tasks)
}

func (s *Subscription) Cancel() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
}
