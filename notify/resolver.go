package notify

import (
	"context"
	"errors"

	"taskflow/lifecycle"
	"taskflow/model"
)

// ErrRecipientNotFound is returned when a transition's recipient cannot be
// resolved in the user directory. The notification for that event is dropped;
// the store mutation that produced it is already committed and unaffected.
var ErrRecipientNotFound = errors.New("recipient not found")

// UserDirectory is the lookup surface the resolver needs. The Firestore
// implementation lives in services.
type UserDirectory interface {
	GetByID(ctx context.Context, uid string) (*model.User, error)
	QueryByRole(ctx context.Context, role string) ([]model.User, error)
}

type Resolver struct {
	Directory UserDirectory
}

// Resolve maps a transition to the users who should be notified. Directory
// state can change between events, so nothing is cached across calls.
//
// Completed tasks notify the first admin the directory returns. Multiple
// admins may exist; only the first is ever notified, matching the behavior
// the rest of the system expects. When no admin exists the set is empty and
// the notification is silently skipped.
func (r *Resolver) Resolve(ctx context.Context, tr lifecycle.Transition) ([]model.User, error) {
	switch tr.Kind {
	case lifecycle.Assigned, lifecycle.Removed:
		user, err := r.Directory.GetByID(ctx, tr.Task.AssignedTo)
		if err != nil {
			return nil, err
		}
		return []model.User{*user}, nil

	case lifecycle.CompletedByAssignee:
		admins, err := r.Directory.QueryByRole(ctx, model.RoleAdmin)
		if err != nil {
			return nil, err
		}
		if len(admins) == 0 {
			return nil, nil
		}
		return []model.User{admins[0]}, nil
	}
	return nil, nil
}
