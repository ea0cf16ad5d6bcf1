package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"mindu/model"
	"mindu/services"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryStore struct {
	mu            sync.Mutex
	notifications []model.ScheduledNotification
	sessions      []model.DeliverySession
}

func (s *memoryStore) Due(ctx context.Context, now time.Time) ([]model.ScheduledNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due []model.ScheduledNotification
	for _, n := range s.notifications {
		if n.Status == model.StatusPending && !n.ScheduledTime.After(now) {
			due = append(due, n)
		}
	}
	return due, nil
}

func (s *memoryStore) HasActive(ctx context.Context, userID string, scheduledTime time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.UserID == userID && n.ScheduledTime.Equal(scheduledTime) &&
			(n.Status == model.StatusPending || n.Status == model.StatusSent) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryStore) Insert(ctx context.Context, n model.ScheduledNotification) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.NotificationID == "" {
		n.NotificationID = uuid.New().String()
	}
	s.notifications = append(s.notifications, n)
	return n.NotificationID, nil
}

func (s *memoryStore) ByUser(ctx context.Context, userID string) ([]model.ScheduledNotification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.ScheduledNotification
	for _, n := range s.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *memoryStore) MarkSent(ctx context.Context, notificationID string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].NotificationID == notificationID {
			s.notifications[i].Status = model.StatusSent
			s.notifications[i].SentAt = &sentAt
		}
	}
	return nil
}

func (s *memoryStore) MarkFailed(ctx context.Context, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].NotificationID == notificationID {
			s.notifications[i].Status = model.StatusFailed
		}
	}
	return nil
}

func (s *memoryStore) AppendSession(ctx context.Context, session model.DeliverySession) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, session)
	return uuid.New().String(), nil
}

type staticUsers struct {
	tokens map[string]string
}

func (u *staticUsers) PushToken(ctx context.Context, userID string) (string, error) {
	token, ok := u.tokens[userID]
	if !ok {
		return "", services.ErrUserNotFound
	}
	if token == "" {
		return "", services.ErrNoPushToken
	}
	return token, nil
}

type recordingPush struct {
	mu   sync.Mutex
	sent []model.ScheduledNotification
}

func (p *recordingPush) Send(ctx context.Context, token string, n model.ScheduledNotification) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, n)
	return "receipt-" + n.NotificationID, nil
}

// accessToken mints a token the real middleware accepts. JWT_SECRET_KEY must
// be set via t.Setenv before calling.
func accessToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := services.CreateAccessToken(userID, userID+"@example.com")
	if err != nil {
		t.Fatalf("failed to create access token: %v", err)
	}
	return token
}

func doRequest(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewReader(jsonBytes)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
