package services

import (
	"context"
	"mindu/model"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

const (
	NotificationCollection = "scheduled_notifications"
	SessionCollection      = "user_sessions"
)

// NotificationStore is the typed facade over the document database. The
// scheduler and controllers only see this interface so tests can swap in
// an in-memory fake.
type NotificationStore interface {
	// Due returns every pending notification whose scheduledTime is at or
	// before now.
	Due(ctx context.Context, now time.Time) ([]model.ScheduledNotification, error)
	// HasActive reports whether the user already has a pending or sent
	// notification for the exact scheduled time.
	HasActive(ctx context.Context, userID string, scheduledTime time.Time) (bool, error)
	Insert(ctx context.Context, n model.ScheduledNotification) (string, error)
	ByUser(ctx context.Context, userID string) ([]model.ScheduledNotification, error)
	MarkSent(ctx context.Context, notificationID string, sentAt time.Time) error
	MarkFailed(ctx context.Context, notificationID string) error
	AppendSession(ctx context.Context, s model.DeliverySession) (string, error)
}

type FirestoreNotificationStore struct {
	client *firestore.Client
}

func NewFirestoreNotificationStore(client *firestore.Client) *FirestoreNotificationStore {
	return &FirestoreNotificationStore{client: client}
}

func (s *FirestoreNotificationStore) Due(ctx context.Context, now time.Time) ([]model.ScheduledNotification, error) {
	query := s.client.Collection(NotificationCollection).
		Where("status", "==", model.StatusPending).
		Where("scheduledTime", "<=", now)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	notifications := make([]model.ScheduledNotification, 0, len(docs))
	for _, doc := range docs {
		var n model.ScheduledNotification
		if err := doc.DataTo(&n); err != nil {
			return nil, err
		}
		n.NotificationID = doc.Ref.ID
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (s *FirestoreNotificationStore) HasActive(ctx context.Context, userID string, scheduledTime time.Time) (bool, error) {
	query := s.client.Collection(NotificationCollection).
		Where("userId", "==", userID).
		Where("scheduledTime", "==", scheduledTime).
		Where("status", "in", []string{model.StatusPending, model.StatusSent}).
		Limit(1)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

func (s *FirestoreNotificationStore) Insert(ctx context.Context, n model.ScheduledNotification) (string, error) {
	if n.NotificationID == "" {
		n.NotificationID = uuid.New().String()
	}
	_, err := s.client.Collection(NotificationCollection).Doc(n.NotificationID).Set(ctx, n)
	if err != nil {
		return "", err
	}
	return n.NotificationID, nil
}

func (s *FirestoreNotificationStore) ByUser(ctx context.Context, userID string) ([]model.ScheduledNotification, error) {
	query := s.client.Collection(NotificationCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	notifications := make([]model.ScheduledNotification, 0, len(docs))
	for _, doc := range docs {
		var n model.ScheduledNotification
		if err := doc.DataTo(&n); err != nil {
			return nil, err
		}
		n.NotificationID = doc.Ref.ID
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (s *FirestoreNotificationStore) MarkSent(ctx context.Context, notificationID string, sentAt time.Time) error {
	_, err := s.client.Collection(NotificationCollection).Doc(notificationID).Update(ctx, []firestore.Update{
		{Path: "status", Value: model.StatusSent},
		{Path: "sentAt", Value: sentAt},
	})
	return err
}

func (s *FirestoreNotificationStore) MarkFailed(ctx context.Context, notificationID string) error {
	_, err := s.client.Collection(NotificationCollection).Doc(notificationID).Update(ctx, []firestore.Update{
		{Path: "status", Value: model.StatusFailed},
	})
	return err
}

func (s *FirestoreNotificationStore) AppendSession(ctx context.Context, session model.DeliverySession) (string, error) {
	sessionID := uuid.New().String()
	_, err := s.client.Collection(SessionCollection).Doc(sessionID).Set(ctx, session)
	if err != nil {
		return "", err
	}
	return sessionID, nil
}
