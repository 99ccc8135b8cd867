package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
	"github.com/noah-isme/campushub/internal/repository"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

type memoryCacheRepo struct {
	mu    sync.Mutex
	items map[string][]byte
	sets  int
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{items: make(map[string][]byte)}
}

func (r *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	raw, ok := r.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (r *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = raw
	r.sets++
	return nil
}

func (r *memoryCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range r.items {
		if strings.HasPrefix(key, prefix) {
			delete(r.items, key)
		}
	}
	return nil
}

func newTestPortal(cacheRepo CacheRepository, enabled bool) (*PortalService, *NotificationService) {
	fixtures := newFixtures()
	forms := newTestForms()
	notifications := newTestNotifications()
	shell := NewShellService(repository.NewMemorySessionStore(time.Hour), nil, nil)
	cache := NewCacheService(cacheRepo, nil, time.Minute, nil, enabled)

	portal := NewPortalService(shell, cache, notifications, nil)
	portal.Register(models.PageDashboard, NewDashboardService(fixtures, nil).Page)
	portal.Register(models.PageAssignments, NewAssignmentService(fixtures, forms, notifications, nil, nil).Page)
	portal.Register(models.PageComplaints, NewComplaintService(fixtures, forms, notifications, nil, nil).Page)
	portal.Register(models.PageGroups, NewGroupService(fixtures, forms, notifications, nil, nil).Page)
	return portal, notifications
}

func TestPortalRender(t *testing.T) {
	portal, notifications := newTestPortal(nil, false)
	ctx := context.Background()

	notifications.Success(ctx, "s-1", "Complaint submitted successfully!")

	view, err := portal.Render(ctx, "s-1", dto.PageQuery{Path: "/complaints/"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, view.Status)
	assert.Equal(t, models.PageComplaints, view.Page.Key)
	assert.Equal(t, "all", view.Page.ActiveTab)
	assert.Equal(t, "/complaints", view.Shell.Path)
	require.Len(t, view.Notifications, 1)

	view, err = portal.Render(ctx, "s-1", dto.PageQuery{Path: "/complaints", Tab: "resolved"})
	require.NoError(t, err)
	assert.Equal(t, "resolved", view.Page.ActiveTab)
	assert.Empty(t, view.Notifications)

	_, err = portal.Render(ctx, "s-1", dto.PageQuery{Path: "/complaints", Tab: "archived"})
	assert.ErrorIs(t, err, appErrors.ErrUnknownTab)
}

func TestPortalNotFound(t *testing.T) {
	portal, _ := newTestPortal(nil, false)

	view, err := portal.Render(context.Background(), "s-1", dto.PageQuery{Path: "/library"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, view.Status)
	assert.Equal(t, models.PageNotFound, view.Page.Key)
	assert.Equal(t, "Oops! Page not found", view.Page.Description)
	require.NotNil(t, view.Shell)
	for _, item := range view.Shell.Nav {
		assert.False(t, item.Active, item.Path)
	}

	// Routed pages without a registered builder fall back to not-found as well.
	view, err = portal.Render(context.Background(), "s-1", dto.PageQuery{Path: "/wifi"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, view.Status)
}

func TestPortalOpensDialogForItem(t *testing.T) {
	portal, _ := newTestPortal(nil, false)

	view, err := portal.Render(context.Background(), "s-1", dto.PageQuery{Path: "/assignments", Dialog: DialogSubmitAssignment, Item: "3"})
	require.NoError(t, err)
	dialog, ok := view.Page.FindDialog(DialogSubmitAssignment)
	require.True(t, ok)
	assert.True(t, dialog.Open)
	assert.Equal(t, "3", dialog.Fields[0].Value)

	view, err = portal.Render(context.Background(), "s-1", dto.PageQuery{Path: "/assignments", Dialog: "missing"})
	require.NoError(t, err)
	dialog, _ = view.Page.FindDialog(DialogSubmitAssignment)
	assert.False(t, dialog.Open)
}

func TestPortalRenderWithForm(t *testing.T) {
	portal, _ := newTestPortal(nil, false)
	result := &dto.SubmissionResult{
		Dialog:     DialogNewComplaint,
		DialogOpen: true,
		Form:       map[string]string{"category": "mess", "title": "Cold food", "description": ""},
	}

	view, err := portal.RenderWithForm(context.Background(), "s-1", dto.PageQuery{Path: "/complaints"}, result)
	require.NoError(t, err)
	dialog, ok := view.Page.FindDialog(DialogNewComplaint)
	require.True(t, ok)
	assert.True(t, dialog.Open)
	assert.Equal(t, "mess", dialog.Fields[0].Value)
	assert.Equal(t, "Cold food", dialog.Fields[1].Value)
}

func TestPortalCachesPageViews(t *testing.T) {
	repo := newMemoryCacheRepo()
	portal, _ := newTestPortal(repo, true)
	ctx := context.Background()

	first, err := portal.Render(ctx, "s-1", dto.PageQuery{Path: "/complaints"})
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := portal.Render(ctx, "s-2", dto.PageQuery{Path: "/complaints", Tab: "pending", Dialog: DialogNewComplaint})
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, "pending", second.Page.ActiveTab)
	dialog, _ := second.Page.FindDialog(DialogNewComplaint)
	assert.True(t, dialog.Open)

	third, err := portal.Render(ctx, "s-1", dto.PageQuery{Path: "/complaints"})
	require.NoError(t, err)
	dialog, _ = third.Page.FindDialog(DialogNewComplaint)
	assert.False(t, dialog.Open)

	groups, err := portal.Render(ctx, "s-1", dto.PageQuery{Path: "/groups", Group: "2"})
	require.NoError(t, err)
	assert.False(t, groups.CacheHit)
	assert.Equal(t, "Tech Club", groups.Page.Sections[1].Title)

	_, err = portal.Render(ctx, "s-1", dto.PageQuery{Path: "/library"})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.sets)
}

func TestPageCacheKey(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	a := pageCacheKey(models.PageGroups, dto.PageQuery{Group: "1", Tab: "x", Dialog: "y"}, now)
	b := pageCacheKey(models.PageGroups, dto.PageQuery{Group: "1"}, now)
	c := pageCacheKey(models.PageGroups, dto.PageQuery{Group: "2"}, now)
	assert.Equal(t, a, b)
	assert.NotEqual(t, b, c)
}

func TestPageCacheKeyAttendanceFollowsToday(t *testing.T) {
	today := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	tomorrow := today.Add(2 * time.Minute)

	before := pageCacheKey(models.PageAttendance, dto.PageQuery{}, today)
	after := pageCacheKey(models.PageAttendance, dto.PageQuery{}, tomorrow)
	assert.NotEqual(t, before, after)
	assert.Equal(t, before, pageCacheKey(models.PageAttendance, dto.PageQuery{Date: "2024-03-01"}, tomorrow))
	assert.Equal(t,
		pageCacheKey(models.PageEvents, dto.PageQuery{}, today),
		pageCacheKey(models.PageEvents, dto.PageQuery{}, tomorrow))
}

func TestPortalFlushPagesDropsCachedViews(t *testing.T) {
	repo := newMemoryCacheRepo()
	repo.items["other:keep"] = []byte(`{}`)
	portal, _ := newTestPortal(repo, true)
	ctx := context.Background()

	_, err := portal.Render(ctx, "s-1", dto.PageQuery{Path: "/complaints"})
	require.NoError(t, err)
	require.Len(t, repo.items, 2)

	require.NoError(t, portal.FlushPages(ctx))
	assert.Len(t, repo.items, 1)
	assert.Contains(t, repo.items, "other:keep")

	again, err := portal.Render(ctx, "s-1", dto.PageQuery{Path: "/complaints"})
	require.NoError(t, err)
	assert.False(t, again.CacheHit)
}
