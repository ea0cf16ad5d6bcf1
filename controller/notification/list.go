package notification

import (
	"context"
	"mindu/dto"
	"mindu/middleware"
	"mindu/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func ListNotificationsController(router *gin.Engine, store services.NotificationStore) {
	router.GET("/notification", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		ListNotifications(c, store)
	})
}

func ListNotifications(c *gin.Context, store services.NotificationStore) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	notifications, err := store.ByUser(ctx, userId)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to load notifications", "kind": "internal"})
		return
	}

	response := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		item := dto.NotificationResponse{
			NotificationID: n.NotificationID,
			Title:          n.Title,
			Body:           n.Body,
			ScheduledTime:  n.ScheduledTime.Format(time.RFC3339),
			Status:         n.Status,
			Type:           n.Type,
			CreatedAt:      n.CreatedAt.Format(time.RFC3339),
			ExpiresAt:      n.ExpiresAt.Format(time.RFC3339),
		}
		if n.SentAt != nil {
			sentAt := n.SentAt.Format(time.RFC3339)
			item.SentAt = &sentAt
		}
		response = append(response, item)
	}

	c.JSON(http.StatusOK, gin.H{"notifications": response})
}
