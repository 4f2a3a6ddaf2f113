package notify_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"taskflow/lifecycle"
	"taskflow/model"
	"taskflow/notify"
)

// fakeDirectory serves lookups from in-memory users, preserving insertion
// order for role queries the way the real directory preserves Firestore
// return order.
type fakeDirectory struct {
	users []model.User
}

func (d *fakeDirectory) GetByID(_ context.Context, uid string) (*model.User, error) {
	for _, u := range d.users {
		if u.UID == uid {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", uid, notify.ErrRecipientNotFound)
}

func (d *fakeDirectory) QueryByRole(_ context.Context, role string) ([]model.User, error) {
	var matched []model.User
	for _, u := range d.users {
		if u.Role == role {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func transition(kind lifecycle.Kind, assignedTo string) lifecycle.Transition {
	return lifecycle.Transition{
		Kind: kind,
		Task: model.Task{
			TaskID:     "t1",
			Title:      "Write report",
			AssignedTo: assignedTo,
			Status:     model.StatusPending,
			Priority:   model.PriorityHigh,
		},
	}
}

func TestResolveAssignedReturnsAssignee(t *testing.T) {
	dir := &fakeDirectory{users: []model.User{
		{UID: "u1", Name: "Alice", Email: "alice@example.com", Role: model.RoleEmployee},
	}}
	resolver := &notify.Resolver{Directory: dir}

	recipients, err := resolver.Resolve(context.Background(), transition(lifecycle.Assigned, "u1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipients) != 1 || recipients[0].UID != "u1" {
		t.Fatalf("expected exactly the assignee, got %+v", recipients)
	}
}

func TestResolveAssignedMissingAssignee(t *testing.T) {
	resolver := &notify.Resolver{Directory: &fakeDirectory{}}

	recipients, err := resolver.Resolve(context.Background(), transition(lifecycle.Assigned, "ghost"))
	if !errors.Is(err, notify.ErrRecipientNotFound) {
		t.Fatalf("expected ErrRecipientNotFound, got %v", err)
	}
	if len(recipients) != 0 {
		t.Fatalf("a failed resolution must not return a partial recipient set: %+v", recipients)
	}
}

func TestResolveCompletedPicksFirstAdmin(t *testing.T) {
	dir := &fakeDirectory{users: []model.User{
		{UID: "u1", Name: "Alice", Email: "alice@example.com", Role: model.RoleEmployee},
		{UID: "a1", Name: "Bob", Email: "bob@example.com", Role: model.RoleAdmin},
		{UID: "a2", Name: "Carol", Email: "carol@example.com", Role: model.RoleAdmin},
	}}
	resolver := &notify.Resolver{Directory: dir}

	recipients, err := resolver.Resolve(context.Background(), transition(lifecycle.CompletedByAssignee, "u1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipients) != 1 || recipients[0].UID != "a1" {
		t.Fatalf("expected only the first admin, got %+v", recipients)
	}
}

func TestResolveCompletedWithoutAdminSkipsSilently(t *testing.T) {
	dir := &fakeDirectory{users: []model.User{
		{UID: "u1", Name: "Alice", Email: "alice@example.com", Role: model.RoleEmployee},
	}}
	resolver := &notify.Resolver{Directory: dir}

	recipients, err := resolver.Resolve(context.Background(), transition(lifecycle.CompletedByAssignee, "u1"))
	if err != nil {
		t.Fatalf("missing admin must not be an error, got %v", err)
	}
	if len(recipients) != 0 {
		t.Fatalf("expected empty recipient set, got %+v", recipients)
	}
}

func TestResolveRemovedMissingAssignee(t *testing.T) {
	resolver := &notify.Resolver{Directory: &fakeDirectory{}}

	_, err := resolver.Resolve(context.Background(), transition(lifecycle.Removed, "u1"))
	if !errors.Is(err, notify.ErrRecipientNotFound) {
		t.Fatalf("expected ErrRecipientNotFound, got %v", err)
	}
}

func TestResolveIgnoredYieldsNothing(t *testing.T) {
	resolver := &notify.Resolver{Directory: &fakeDirectory{}}

	recipients, err := resolver.Resolve(context.Background(), lifecycle.Transition{Kind: lifecycle.Ignored})
	if err != nil || len(recipients) != 0 {
		t.Fatalf("ignored transitions resolve to nothing, got %+v, %v", recipients, err)
	}
}
