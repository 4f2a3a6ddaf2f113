package notify_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"taskflow/model"
	"taskflow/notify"
	"taskflow/store"
)

type fakeDispatcher struct {
	sent []model.EmailMessage
	err  error
}

func (d *fakeDispatcher) Send(msg model.EmailMessage) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, msg)
	return nil
}

func newPipeline(dir *fakeDirectory, dispatcher *fakeDispatcher) *notify.Pipeline {
	return &notify.Pipeline{
		Resolver: &notify.Resolver{Directory: dir},
		Renderer: &notify.Renderer{
			AppBaseURL:  "https://taskflow.example.com",
			FromAddress: "noreply@example.com",
		},
		Dispatcher: dispatcher,
	}
}

func pipelineUsers() *fakeDirectory {
	return &fakeDirectory{users: []model.User{
		{UID: "u1", Name: "Alice", Email: "alice@example.com", Role: model.RoleEmployee},
		{UID: "a1", Name: "Bob", Email: "bob@example.com", Role: model.RoleAdmin},
	}}
}

func TestPipelineCreatedEventNotifiesAssignee(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	p := newPipeline(pipelineUsers(), dispatcher)

	p.Process(context.Background(), store.ChangeEvent{
		Type:   store.EventCreated,
		TaskID: "t1",
		After: &model.Task{
			Title:      "Write report",
			AssignedTo: "u1",
			Priority:   model.PriorityHigh,
			Status:     model.StatusPending,
		},
	})

	if len(dispatcher.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(dispatcher.sent))
	}
	msg := dispatcher.sent[0]
	if msg.To != "alice@example.com" {
		t.Fatalf("expected assignee, got %q", msg.To)
	}
	if !strings.Contains(msg.Subject, "New Task Assigned") {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
}

func TestPipelineCompletionNotifiesAdmin(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	p := newPipeline(pipelineUsers(), dispatcher)

	before := model.Task{Title: "Write report", AssignedTo: "u1", AssignedToName: "Alice", Priority: model.PriorityHigh, Status: model.StatusInProgress}
	after := before
	after.Status = model.StatusCompleted

	p.Process(context.Background(), store.ChangeEvent{
		Type:   store.EventUpdated,
		TaskID: "t1",
		Before: &before,
		After:  &after,
	})

	if len(dispatcher.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(dispatcher.sent))
	}
	msg := dispatcher.sent[0]
	if msg.To != "bob@example.com" {
		t.Fatalf("completion goes to the admin, got %q", msg.To)
	}
	if !strings.Contains(msg.Body, "Alice") {
		t.Fatal("completion body must name the assignee")
	}
}

func TestPipelineIgnoredUpdateSendsNothing(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	p := newPipeline(pipelineUsers(), dispatcher)

	before := model.Task{Title: "Write report", AssignedTo: "u1", Priority: model.PriorityHigh, Status: model.StatusPending}
	after := before
	after.Status = model.StatusInProgress

	p.Process(context.Background(), store.ChangeEvent{
		Type:   store.EventUpdated,
		TaskID: "t1",
		Before: &before,
		After:  &after,
	})

	if len(dispatcher.sent) != 0 {
		t.Fatalf("pending to in-progress must not notify, got %d messages", len(dispatcher.sent))
	}
}

func TestPipelineDropsOnMissingRecipient(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	p := newPipeline(&fakeDirectory{}, dispatcher)

	p.Process(context.Background(), store.ChangeEvent{
		Type:   store.EventDeleted,
		TaskID: "t1",
		Before: &model.Task{
			Title:      "Write report",
			AssignedTo: "u1",
			Priority:   model.PriorityHigh,
			Status:     model.StatusInProgress,
		},
	})

	if len(dispatcher.sent) != 0 {
		t.Fatalf("missing recipient must drop the notification, got %d messages", len(dispatcher.sent))
	}
}

func TestPipelineSurvivesDispatchFailure(t *testing.T) {
	dispatcher := &fakeDispatcher{err: errors.New("smtp down")}
	p := newPipeline(pipelineUsers(), dispatcher)

	// Must not panic or propagate; a dispatch failure is logged and dropped.
	p.Process(context.Background(), store.ChangeEvent{
		Type:   store.EventCreated,
		TaskID: "t1",
		After: &model.Task{
			Title:      "Write report",
			AssignedTo: "u1",
			Priority:   model.PriorityHigh,
			Status:     model.StatusPending,
		},
	})
}

func TestPipelineRunDrainsChannel(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	p := newPipeline(pipelineUsers(), dispatcher)

	events := make(chan store.ChangeEvent, 2)
	events <- store.ChangeEvent{
		Type:   store.EventCreated,
		TaskID: "t1",
		After:  &model.Task{Title: "One", AssignedTo: "u1", Priority: model.PriorityLow, Status: model.StatusPending},
	}
	events <- store.ChangeEvent{
		Type:   store.EventCreated,
		TaskID: "t2",
		After:  &model.Task{Title: "Two", AssignedTo: "u1", Priority: model.PriorityLow, Status: model.StatusPending},
	}
	close(events)

	p.Run(context.Background(), events)

	if len(dispatcher.sent) != 2 {
		t.Fatalf("expected both events dispatched, got %d", len(dispatcher.sent))
	}
}
