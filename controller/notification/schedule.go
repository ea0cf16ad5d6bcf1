package notification

import (
	"context"
	"mindu/dto"
	"mindu/metrics"
	"mindu/middleware"
	"mindu/model"
	"mindu/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ScheduleNotificationController(router *gin.Engine, store services.NotificationStore) {
	router.POST("/notification/schedule", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ScheduleNotification(c, store)
	})
}

func ScheduleNotification(c *gin.Context, store services.NotificationStore) {
	userId := c.MustGet("userId").(string)
	var request dto.ScheduleNotificationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "kind": "invalid-argument"})
		return
	}

	scheduledTime, err := time.Parse(time.RFC3339, request.ScheduledTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scheduledTime format", "kind": "invalid-argument"})
		return
	}

	// Reject a second schedule for the same user and time while one is still
	// pending or sent. Check and insert are two operations, so two concurrent
	// calls can still both pass; see DESIGN.md.
	ctx := context.Background()
	exists, err := store.HasActive(ctx, userId, scheduledTime)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to check existing notifications", "kind": "internal"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "A notification is already scheduled for this date and time", "kind": "already-exists"})
		return
	}

	notificationType := request.Type
	if notificationType == "" {
		notificationType = model.DefaultNotificationType
	}

	notificationid := uuid.New().String()
	newNotification := model.ScheduledNotification{
		NotificationID: notificationid,
		UserID:         userId,
		Title:          request.Title,
		Body:           request.Body,
		ScheduledTime:  scheduledTime,
		Status:         model.StatusPending,
		Type:           notificationType,
		CreatedAt:      time.Now(),
		ExpiresAt:      scheduledTime.Add(model.ExpiryWindow),
	}

	if _, err := store.Insert(ctx, newNotification); err != nil {
		c.JSON(500, gin.H{"error": "Failed to schedule notification", "kind": "internal"})
		return
	}
	metrics.NotificationsScheduled.Inc()

	c.JSON(http.StatusCreated, dto.ScheduleNotificationResponse{
		Success:        true,
		NotificationID: notificationid,
		Message:        "Notification scheduled successfully",
	})
}
