// Package lifecycle decides which task mutations deserve a notification.
package lifecycle

import (
	"taskflow/model"
	"taskflow/store"
)

type Kind int

const (
	// Ignored marks events that need no notification: field edits,
	// reassignments, status moves that do not land on completed, and
	// malformed events.
	Ignored Kind = iota
	// Assigned marks a newly created task; the assignee gets notified.
	Assigned
	// CompletedByAssignee marks a status crossing into completed; the admin
	// of record gets notified.
	CompletedByAssignee
	// Removed marks a deleted task; the assignee gets notified.
	Removed
)

func (k Kind) String() string {
	switch k {
	case Assigned:
		return "assigned"
	case CompletedByAssignee:
		return "completed"
	case Removed:
		return "removed"
	}
	return "ignored"
}

// Transition is the classification of one change event. Task is the snapshot
// the notification should describe: the created task, the post-update task, or
// the task as it was when deleted.
type Transition struct {
	Kind Kind
	Task model.Task
}

// Classify maps a change event onto a transition. It is pure and never fails:
// events missing the snapshots or status fields they need come back Ignored,
// and the caller decides what to log.
//
// Status may move in either direction between pending, in-progress and
// completed; only the crossing into completed is notification-worthy.
func Classify(ev store.ChangeEvent) Transition {
	switch ev.Type {
	case store.EventCreated:
		if ev.After == nil || ev.After.Status == "" {
			return Transition{Kind: Ignored}
		}
		return Transition{Kind: Assigned, Task: *ev.After}

	case store.EventUpdated:
		if ev.Before == nil || ev.After == nil || ev.Before.Status == "" || ev.After.Status == "" {
			return Transition{Kind: Ignored}
		}
		if ev.Before.Status != model.StatusCompleted && ev.After.Status == model.StatusCompleted {
			return Transition{Kind: CompletedByAssignee, Task: *ev.After}
		}
		return Transition{Kind: Ignored}

	case store.EventDeleted:
		if ev.Before == nil || ev.Before.Status == "" {
			return Transition{Kind: Ignored}
		}
		return Transition{Kind: Removed, Task: *ev.Before}
	}
	return Transition{Kind: Ignored}
}
