package model

import "time"

// User mirrors the documents in the users collection. The collection is owned
// by the account service; this backend only reads it to resolve the FCM token.
type User struct {
	UserID    string    `firestore:"userId,omitempty"`
	Name      string    `firestore:"name,omitempty"`
	Email     string    `firestore:"email,omitempty"`
	FCMToken  string    `firestore:"fcmToken,omitempty"`
	CreatedAt time.Time `firestore:"createdAt,omitempty"`
}
