package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"taskflow/model"
)

const tasksCollection = "tasks"

// TaskStore wraps the tasks collection and is the only component that talks
// to Firestore about tasks. Everything downstream works on model.Task values.
type TaskStore struct {
	client *firestore.Client
}

func NewTaskStore(client *firestore.Client) *TaskStore {
	return &TaskStore{client: client}
}

// Create stores a new task and returns its document id. CreatedAt and
// UpdatedAt are filled in by the server timestamp sentinel on the struct tags.
func (s *TaskStore) Create(ctx context.Context, t model.Task) (string, error) {
	taskID := uuid.New().String()
	if _, err := s.client.Collection(tasksCollection).Doc(taskID).Set(ctx, t); err != nil {
		return "", fmt.Errorf("create task: %w", err)
	}
	return taskID, nil
}

// Update applies a partial update and bumps updatedAt.
func (s *TaskStore) Update(ctx context.Context, taskID string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})
	if _, err := s.client.Collection(tasksCollection).Doc(taskID).Update(ctx, updates); err != nil {
		return fmt.Errorf("update task %s: %w", taskID, err)
	}
	return nil
}

// Complete marks a task completed and stamps completedAt.
func (s *TaskStore) Complete(ctx context.Context, taskID string) error {
	return s.Update(ctx, taskID, []firestore.Update{
		{Path: "status", Value: model.StatusCompleted},
		{Path: "completedAt", Value: firestore.ServerTimestamp},
	})
}

func (s *TaskStore) Delete(ctx context.Context, taskID string) error {
	if _, err := s.client.Collection(tasksCollection).Doc(taskID).Delete(ctx); err != nil {
		return fmt.Errorf("delete task %s: %w", taskID, err)
	}
	return nil
}

func (s *TaskStore) Get(ctx context.Context, taskID string) (model.Task, error) {
	doc, err := s.client.Collection(tasksCollection).Doc(taskID).Get(ctx)
	if err != nil {
		return model.Task{}, err
	}
	return decodeTask(doc)
}

// GetAll returns every task ordered by creation time, newest first.
func (s *TaskStore) GetAll(ctx context.Context) ([]model.Task, error) {
	query := s.client.Collection(tasksCollection).OrderBy("createdAt", firestore.Desc)
	return collectTasks(query.Documents(ctx))
}

// GetByAssignee returns the tasks assigned to one user, newest first.
func (s *TaskStore) GetByAssignee(ctx context.Context, uid string) ([]model.Task, error) {
	query := s.client.Collection(tasksCollection).
		Where("assignedTo", "==", uid).
		OrderBy("createdAt", firestore.Desc)
	return collectTasks(query.Documents(ctx))
}

func collectTasks(iter *firestore.DocumentIterator) ([]model.Task, error) {
	defer iter.Stop()

	var tasks []model.Task
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		t, err := decodeTask(doc)
		if err != nil {
			// A malformed document must not poison the whole listing.
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// decodeTask maps a document snapshot onto the task schema. The returned task
// carries whatever fields did decode even when validation fails, so callers
// can still log something identifiable.
func decodeTask(doc *firestore.DocumentSnapshot) (model.Task, error) {
	var t model.Task
	if err := doc.DataTo(&t); err != nil {
		t.TaskID = doc.Ref.ID
		return t, fmt.Errorf("decode task %s: %w", doc.Ref.ID, err)
	}
	t.TaskID = doc.Ref.ID
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("task %s: %w", doc.Ref.ID, err)
	}
	return t, nil
}
