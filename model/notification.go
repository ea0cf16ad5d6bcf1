package model

import (
	"time"
)

// Notification status values. A notification is created as pending and is
// moved to sent or failed by the dispatcher, never back to pending.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// DefaultNotificationType is used when the client does not send a type.
const DefaultNotificationType = "appointment"

// ExpiryWindow is how long after scheduledTime a notification is still
// considered worth delivering. Advisory only, nothing enforces it yet.
const ExpiryWindow = 30 * time.Minute

type ScheduledNotification struct {
	NotificationID string     `firestore:"notificationId,omitempty"`
	UserID         string     `firestore:"userId,omitempty"`
	Title          string     `firestore:"title,omitempty"`
	Body           string     `firestore:"body,omitempty"`
	ScheduledTime  time.Time  `firestore:"scheduledTime,omitempty"`
	Status         string     `firestore:"status,omitempty"`
	Type           string     `firestore:"type,omitempty"`
	CreatedAt      time.Time  `firestore:"createdAt,omitempty"`
	ExpiresAt      time.Time  `firestore:"expiresAt,omitempty"`
	SentAt         *time.Time `firestore:"sentAt,omitempty"`
}

// SessionStatusCompleted is the only status a DeliverySession is written with.
const SessionStatusCompleted = "completed"

// DeliverySession is the append-only audit record written to user_sessions
// after a successful delivery. It is never updated or deleted.
type DeliverySession struct {
	UserID           string           `firestore:"userId,omitempty"`
	NotificationID   string           `firestore:"notificationId,omitempty"`
	SessionTime      time.Time        `firestore:"sessionTime,omitempty"`
	Status           string           `firestore:"status,omitempty"`
	CreatedAt        time.Time        `firestore:"createdAt,omitempty"`
	NotificationData NotificationData `firestore:"notificationData,omitempty"`
}

type NotificationData struct {
	Title string `firestore:"title,omitempty"`
	Body  string `firestore:"body,omitempty"`
}
