package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionHandlerLikeEvent(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPost, testPrefix+"/events/1/like", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, "like", envelope.Data["action"])
	notification := envelope.Data["notification"].(map[string]interface{})
	assert.Equal(t, "Event liked!", notification["message"])
}

func TestActionHandlerUnknownEvent(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPost, testPrefix+"/events/404/share", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, stack.notifications.Drain(testSession))
}

func TestActionHandlerConnect(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPost, testPrefix+"/connect/students/1/message", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Opening chat with")

	rec = stack.do(http.MethodPost, testPrefix+"/connect/parents/1/connect", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
