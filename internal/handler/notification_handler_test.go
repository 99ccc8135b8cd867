package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/service"
)

func TestNotificationHandlerListDrainsOnce(t *testing.T) {
	stack := newTestStack(t)
	stack.notifications.Success(context.Background(), testSession, "Group created successfully!")

	rec := stack.get(testPrefix + "/notifications")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Group created successfully!")

	rec = stack.get(testPrefix + "/notifications")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestNotificationHandlerStream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	notifications := service.NewNotificationService(0, nil, nil, nil)
	notifications.Info(context.Background(), testSession, "Download ready: marks-internal.csv")
	handler := NewNotificationHandler(notifications, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/notifications/stream", nil).WithContext(ctx)
	c.Set("session_id", testSession)

	handler.Stream(c)

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "event:notification")
	assert.Contains(t, body, "Download ready: marks-internal.csv")
	assert.Empty(t, notifications.Drain(testSession))
}
