package dto

type ScheduleNotificationRequest struct {
	Title         string `json:"title" binding:"required"`
	Body          string `json:"body" binding:"required"`
	ScheduledTime string `json:"scheduledTime" binding:"required"`
	Type          string `json:"type"`
}

type ScheduleNotificationResponse struct {
	Success        bool   `json:"success"`
	NotificationID string `json:"notificationId"`
	Message        string `json:"message"`
}

type NotificationResponse struct {
	NotificationID string  `json:"notificationId"`
	Title          string  `json:"title"`
	Body           string  `json:"body"`
	ScheduledTime  string  `json:"scheduledTime"`
	Status         string  `json:"status"`
	Type           string  `json:"type"`
	CreatedAt      string  `json:"createdAt"`
	ExpiresAt      string  `json:"expiresAt"`
	SentAt         *string `json:"sentAt,omitempty"`
}
