package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campushub/internal/models"
	"github.com/noah-isme/campushub/pkg/middleware/session"
	"github.com/noah-isme/campushub/pkg/response"
)

const defaultHeartbeat = 15 * time.Second

type notificationChannel interface {
	Drain(sessionID string) []models.Notification
	Subscribe(sessionID string) (<-chan models.Notification, func())
}

// NotificationHandler exposes the session's toasts.
type NotificationHandler struct {
	notifications notificationChannel
	heartbeat     time.Duration
}

// NewNotificationHandler constructs the handler.
func NewNotificationHandler(notifications notificationChannel, heartbeat time.Duration) *NotificationHandler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &NotificationHandler{notifications: notifications, heartbeat: heartbeat}
}

// List godoc
// @Summary Drain pending toasts
// @Description Each toast is returned once.
// @Tags Notifications
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	pending := h.notifications.Drain(session.Value(c))
	if pending == nil {
		pending = []models.Notification{}
	}
	response.JSON(c, http.StatusOK, pending)
}

// Stream godoc
// @Summary Live toast stream
// @Description Server-sent events. Toasts queued before the stream opened are sent first.
// @Tags Notifications
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /notifications/stream [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	ch, cancel := h.notifications.Subscribe(session.Value(c))
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	done := c.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			c.SSEvent("notification", n)
		case <-ticker.C:
			c.SSEvent("ping", time.Now().Unix())
		}
		c.Writer.Flush()
	}
}
