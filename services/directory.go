package services

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskflow/model"
	"taskflow/notify"
)

const usersCollection = "users"

// Directory looks up users in Firestore. It satisfies notify.UserDirectory.
type Directory struct {
	Client *firestore.Client
}

// GetByID fetches one user document. A missing document maps to
// notify.ErrRecipientNotFound so callers can drop the notification cleanly.
func (d *Directory) GetByID(ctx context.Context, uid string) (*model.User, error) {
	doc, err := d.Client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user %s: %w", uid, notify.ErrRecipientNotFound)
		}
		return nil, err
	}
	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("parse user %s: %w", uid, err)
	}
	user.UID = doc.Ref.ID
	return &user, nil
}

// QueryByRole returns every user holding the role, in directory order.
func (d *Directory) QueryByRole(ctx context.Context, role string) ([]model.User, error) {
	iter := d.Client.Collection(usersCollection).Where("role", "==", role).Documents(ctx)
	defer iter.Stop()

	var users []model.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var user model.User
		if err := doc.DataTo(&user); err != nil {
			continue
		}
		user.UID = doc.Ref.ID
		users = append(users, user)
	}
	return users, nil
}

// GetByEmail finds the user registered under an email address.
func (d *Directory) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	docs, err := d.Client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, errors.New("user not found")
	}
	var user model.User
	if err := docs[0].DataTo(&user); err != nil {
		return nil, fmt.Errorf("parse user %s: %w", email, err)
	}
	user.UID = docs[0].Ref.ID
	return &user, nil
}

// EmailExists reports whether an email address is already registered.
func (d *Directory) EmailExists(ctx context.Context, email string) (bool, error) {
	docs, err := d.Client.Collection(usersCollection).
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}
