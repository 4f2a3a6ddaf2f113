package model

import (
	"errors"
	"time"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	TaskID         string     `firestore:"-" json:"id"`
	Title          string     `firestore:"title" json:"title"`
	Description    string     `firestore:"description,omitempty" json:"description,omitempty"`
	AssignedTo     string     `firestore:"assignedTo" json:"assignedTo"`
	AssignedToName string     `firestore:"assignedToName,omitempty" json:"assignedToName,omitempty"`
	Priority       string     `firestore:"priority" json:"priority"`
	Status         string     `firestore:"status" json:"status"`
	DueDate        *time.Time `firestore:"dueDate,omitempty" json:"dueDate,omitempty"`
	CreatedAt      time.Time  `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt      time.Time  `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`
	CompletedAt    *time.Time `firestore:"completedAt,omitempty" json:"completedAt,omitempty"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Validate checks the fields every stored task document must carry. Documents
// failing it are treated as malformed at the store boundary and never reach
// rendering.
func (t *Task) Validate() error {
	if t.Title == "" {
		return errors.New("task is missing a title")
	}
	if t.AssignedTo == "" {
		return errors.New("task is missing an assignee")
	}
	if !ValidStatus(t.Status) {
		return errors.New("task has an unknown status")
	}
	if !ValidPriority(t.Priority) {
		return errors.New("task has an unknown priority")
	}
	return nil
}
