package service

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
)

// PageBuilder renders one routed page from its query state.
type PageBuilder func(ctx context.Context, q dto.PageQuery) (*dto.PageView, error)

type notificationDrainer interface {
	Drain(sessionID string) []models.Notification
}

const pageCachePrefix = "page:"

// PortalService composes the shell, the routed page and pending toasts.
type PortalService struct {
	shell         *ShellService
	pages         map[models.PageKey]PageBuilder
	notFound      PageBuilder
	cache         *CacheService
	notifications notificationDrainer
	logger        *zap.Logger
	now           func() time.Time
}

// NewPortalService constructs the portal. Pages are attached with Register.
func NewPortalService(shell *ShellService, cache *CacheService, notifications notificationDrainer, logger *zap.Logger) *PortalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortalService{
		shell:         shell,
		pages:         make(map[models.PageKey]PageBuilder),
		notFound:      NewPlaceholderService().NotFound,
		cache:         cache,
		notifications: notifications,
		logger:        logger,
		now:           time.Now,
	}
}

// Register binds a page key to its builder.
func (s *PortalService) Register(key models.PageKey, builder PageBuilder) {
	if key == models.PageNotFound {
		s.notFound = builder
		return
	}
	s.pages[key] = builder
}

// Render draws the screen for q.Path. Unmapped paths render the not-found
// page with status 404 inside the usual shell.
func (s *PortalService) Render(ctx context.Context, sessionID string, q dto.PageQuery) (*dto.PortalView, error) {
	return s.render(ctx, sessionID, q, nil)
}

// RenderWithForm redraws the page after a rejected submission: the dialog
// stays open and keeps what the visitor typed.
func (s *PortalService) RenderWithForm(ctx context.Context, sessionID string, q dto.PageQuery, result *dto.SubmissionResult) (*dto.PortalView, error) {
	if result != nil && result.DialogOpen {
		q.Dialog = result.Dialog
	}
	return s.render(ctx, sessionID, q, result)
}

func (s *PortalService) render(ctx context.Context, sessionID string, q dto.PageQuery, result *dto.SubmissionResult) (*dto.PortalView, error) {
	q.Path = NormalizePath(q.Path)
	shell, err := s.shell.Shell(ctx, sessionID, q.Path)
	if err != nil {
		return nil, err
	}

	route := s.shell.Resolve(q.Path)
	builder, ok := s.pages[route.Page]
	status := http.StatusOK
	if !ok || route.NotFound() {
		builder, status = s.notFound, http.StatusNotFound
	}

	page, hit, err := s.page(ctx, route, builder, q, status == http.StatusOK)
	if err != nil {
		return nil, err
	}
	if err := selectTab(page, q.Tab); err != nil {
		return nil, err
	}
	openDialog(page, q, result)

	return &dto.PortalView{
		Shell:         shell,
		Page:          page,
		Notifications: s.notifications.Drain(sessionID),
		Status:        status,
		CacheHit:      hit,
	}, nil
}

func (s *PortalService) page(ctx context.Context, route models.Route, builder PageBuilder, q dto.PageQuery, cacheable bool) (*dto.PageView, bool, error) {
	if !cacheable {
		page, err := builder(ctx, q)
		return page, false, err
	}
	key := pageCacheKey(route.Page, q, s.now())
	var cached dto.PageView
	if s.cache.Get(ctx, key, &cached) {
		return &cached, true, nil
	}
	page, err := builder(ctx, q)
	if err != nil {
		return nil, false, err
	}
	s.cache.Set(ctx, key, page, 0)
	return page, false, nil
}

// FlushPages drops every cached page view. The keys do not carry the
// fixture source, so startup clears them.
func (s *PortalService) FlushPages(ctx context.Context) error {
	return s.cache.Invalidate(ctx, pageCachePrefix+"*")
}

// pageCacheKey varies by the query state a builder reads. Tab and dialog are
// applied after the fetch and stay out of the key. Attendance without a date
// shows today, so the key carries today's date.
func pageCacheKey(page models.PageKey, q dto.PageQuery, now time.Time) string {
	date := strings.TrimSpace(q.Date)
	if date == "" && page == models.PageAttendance {
		date = now.Format(dateLayout)
	}
	v := url.Values{}
	v.Set("group", q.Group)
	v.Set("q", q.Search)
	v.Set("date", date)
	return pageCachePrefix + string(page) + ":" + v.Encode()
}

func openDialog(page *dto.PageView, q dto.PageQuery, result *dto.SubmissionResult) {
	if q.Dialog == "" {
		return
	}
	dialog, ok := page.FindDialog(q.Dialog)
	if !ok {
		return
	}
	dialog.Open = true
	if dialog.TargetField != "" && q.Item != "" {
		dialog.Fill(map[string]string{dialog.TargetField: q.Item})
	}
	if result != nil && result.Dialog == dialog.Key {
		dialog.Fill(result.Form)
	}
}
