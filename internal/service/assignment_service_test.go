package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

func TestAssignmentPageTabs(t *testing.T) {
	svc := NewAssignmentService(newFixtures(), newTestForms(), newTestNotifications(), nil, nil)

	page, err := svc.Page(context.Background(), dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, page.Tabs, 4)

	counts := map[string]int{}
	for _, tab := range page.Tabs {
		counts[tab.Key] = tab.Count
	}
	assert.Equal(t, map[string]int{"all": 4, "pending": 2, "submitted": 1, "graded": 1}, counts)

	graded, ok := page.FindTab("graded")
	require.True(t, ok)
	require.NotNil(t, graded.Cards[0].Alert)
	assert.Equal(t, "Grade: 72/80", graded.Cards[0].Alert.Message)

	pending, _ := page.FindTab("pending")
	require.Len(t, pending.Cards[0].Actions, 1)
	assert.Equal(t, "/assignments?dialog=submit-assignment&item=1", pending.Cards[0].Actions[0].Href)
}

func TestAssignmentSubmit(t *testing.T) {
	notifications := newTestNotifications()
	svc := NewAssignmentService(newFixtures(), newTestForms(), notifications, nil, nil)
	ctx := context.Background()

	result, err := svc.Submit(ctx, "s-1", dto.AssignmentSubmissionRequest{AssignmentID: "1", FileName: "avl.zip", Notes: "done"})
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.False(t, result.DialogOpen)
	assert.Equal(t, "Assignment submitted successfully!", result.Notification.Message)
	assert.Equal(t, "", result.Form["notes"])

	result, err = svc.Submit(ctx, "s-1", dto.AssignmentSubmissionRequest{AssignmentID: "2"})
	require.NoError(t, err)
	assert.True(t, result.DialogOpen)
	assert.Equal(t, models.NotificationError, result.Notification.Level)

	result, err = svc.Submit(ctx, "s-1", dto.AssignmentSubmissionRequest{AssignmentID: "3", FileName: "diagram.png", Notes: "keep me"})
	require.NoError(t, err)
	assert.True(t, result.DialogOpen)
	assert.Equal(t, msgUnsupportedFile, result.Notification.Message)
	assert.Equal(t, "keep me", result.Form["notes"])

	_, err = svc.Submit(ctx, "s-1", dto.AssignmentSubmissionRequest{AssignmentID: "99"})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	assert.Len(t, notifications.Drain("s-1"), 3)

	page, err := svc.Page(ctx, dto.PageQuery{})
	require.NoError(t, err)
	all, _ := page.FindTab("all")
	assert.Equal(t, 4, all.Count)
}

func TestAssignmentBadgeFallback(t *testing.T) {
	b := assignmentBadge(models.Status("overdue"))
	assert.Equal(t, models.ToneDestructive, b.Tone)
	assert.Equal(t, "x-circle", b.Icon)
	assert.Equal(t, models.ToneWarning, assignmentBadge(models.StatusPending).Tone)
}
