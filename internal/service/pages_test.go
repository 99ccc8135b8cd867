package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
	"github.com/noah-isme/campushub/internal/repository"
)

func TestPagesRenderEveryRoute(t *testing.T) {
	notifications := newTestNotifications()
	shell := NewShellService(repository.NewMemorySessionStore(time.Hour), nil, nil)
	portal := NewPortalService(shell, NewCacheService(nil, nil, 0, nil, false), notifications, nil)
	NewPages(newFixtures(), newTestForms(), notifications, nil, nil).Register(portal)

	for _, route := range models.RouteTable() {
		view, err := portal.Render(context.Background(), "s-1", dto.PageQuery{Path: route.Path})
		require.NoError(t, err, route.Path)
		assert.Equal(t, http.StatusOK, view.Status, route.Path)
		assert.Equal(t, route.Page, view.Page.Key, route.Path)
		assert.NotEmpty(t, view.Page.Title, route.Path)
	}
}
