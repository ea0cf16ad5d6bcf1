package services

import (
	"context"
	"mindu/model"

	"firebase.google.com/go/messaging"
)

// ClickAction is what the mobile client listens for to open the right screen.
const ClickAction = "FLUTTER_NOTIFICATION_CLICK"

// PushSender submits one push message and returns the gateway receipt id.
// Errors are opaque; the dispatcher only cares that the send failed.
type PushSender interface {
	Send(ctx context.Context, token string, n model.ScheduledNotification) (string, error)
}

type FCMPushSender struct {
	client *messaging.Client
}

func NewFCMPushSender(client *messaging.Client) *FCMPushSender {
	return &FCMPushSender{client: client}
}

func (s *FCMPushSender) Send(ctx context.Context, token string, n model.ScheduledNotification) (string, error) {
	return s.client.Send(ctx, BuildPushMessage(token, n))
}

// BuildPushMessage assembles the FCM message for a scheduled notification:
// visible title/body, a data payload the client routes on, and the sound and
// badge hints both platforms expect.
func BuildPushMessage(token string, n model.ScheduledNotification) *messaging.Message {
	badge := 1
	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: map[string]string{
			"type":           "scheduled_notification",
			"notificationId": n.NotificationID,
			"click_action":   ClickAction,
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound: "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
					Badge: &badge,
				},
			},
		},
	}
}
