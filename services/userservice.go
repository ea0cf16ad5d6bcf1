package services

import (
	"context"
	"errors"
	"mindu/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const UserCollection = "users"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNoPushToken  = errors.New("user has no FCM token")
)

// UserDirectory resolves the push destination for a user. The users
// collection is owned by the account service and is read-only here.
type UserDirectory interface {
	PushToken(ctx context.Context, userID string) (string, error)
}

type FirestoreUserDirectory struct {
	client *firestore.Client
}

func NewFirestoreUserDirectory(client *firestore.Client) *FirestoreUserDirectory {
	return &FirestoreUserDirectory{client: client}
}

func (d *FirestoreUserDirectory) PushToken(ctx context.Context, userID string) (string, error) {
	doc, err := d.client.Collection(UserCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", ErrUserNotFound
		}
		return "", err
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return "", err
	}
	if user.FCMToken == "" {
		return "", ErrNoPushToken
	}
	return user.FCMToken, nil
}
