package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

// Brand is the portal name shown in the header.
const Brand = "CampusHub"

// SessionStore keeps per-visitor shell state.
type SessionStore interface {
	SidebarOpen(ctx context.Context, sessionID string) (bool, error)
	SetSidebarOpen(ctx context.Context, sessionID string, open bool) error
	ToggleSidebar(ctx context.Context, sessionID string) (bool, error)
}

// ShellService resolves routes and owns the sidebar state machine.
type ShellService struct {
	store   SessionStore
	routes  []models.Route
	byPath  map[string]models.Route
	metrics *MetricsService
	logger  *zap.Logger
}

// NewShellService constructs the shell around the static route table.
func NewShellService(store SessionStore, metrics *MetricsService, logger *zap.Logger) *ShellService {
	if logger == nil {
		logger = zap.NewNop()
	}
	routes := models.RouteTable()
	byPath := make(map[string]models.Route, len(routes))
	for _, r := range routes {
		byPath[r.Path] = r
	}
	return &ShellService{store: store, routes: routes, byPath: byPath, metrics: metrics, logger: logger}
}

// NormalizePath drops a trailing slash and the query string. The root stays "/".
func NormalizePath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}

// Resolve maps a path to its route by exact match. Unmatched paths resolve to
// the not-found route carrying the normalised path.
func (s *ShellService) Resolve(path string) models.Route {
	path = NormalizePath(path)
	if r, ok := s.byPath[path]; ok {
		return r
	}
	return models.Route{Path: path, Page: models.PageNotFound, Title: "Page Not Found"}
}

// Routes returns the route table in sidebar order.
func (s *ShellService) Routes() []models.Route {
	out := make([]models.Route, len(s.routes))
	copy(out, s.routes)
	return out
}

// Shell builds the chrome for path.
func (s *ShellService) Shell(ctx context.Context, sessionID, path string) (*dto.ShellView, error) {
	open, err := s.store.SidebarOpen(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
	return s.view(path, open), nil
}

// Toggle flips the sidebar.
func (s *ShellService) Toggle(ctx context.Context, sessionID, path string) (*dto.ShellView, error) {
	open, err := s.store.ToggleSidebar(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to toggle sidebar")
	}
	s.metrics.SidebarTransition("toggle", open)
	return s.view(path, open), nil
}

// Close shuts the sidebar, as a backdrop tap does. Closing a closed sidebar is a no-op.
func (s *ShellService) Close(ctx context.Context, sessionID, path string) (*dto.ShellView, error) {
	if err := s.close(ctx, sessionID, "backdrop"); err != nil {
		return nil, err
	}
	return s.view(path, false), nil
}

// Navigate selects a sidebar entry. The sidebar always ends up closed.
func (s *ShellService) Navigate(ctx context.Context, sessionID, path string) (*dto.ShellView, error) {
	if err := s.close(ctx, sessionID, "navigate"); err != nil {
		return nil, err
	}
	return s.view(path, false), nil
}

func (s *ShellService) close(ctx context.Context, sessionID, trigger string) error {
	if err := s.store.SetSidebarOpen(ctx, sessionID, false); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to close sidebar")
	}
	s.metrics.SidebarTransition(trigger, false)
	return nil
}

func (s *ShellService) view(path string, open bool) *dto.ShellView {
	route := s.Resolve(path)
	nav := make([]dto.NavItem, 0, len(s.routes))
	for _, r := range s.routes {
		nav = append(nav, dto.NavItem{
			Title:  r.Title,
			Path:   r.Path,
			Icon:   r.Icon,
			Active: !route.NotFound() && r.Path == route.Path,
		})
	}
	return &dto.ShellView{
		Brand:           Brand,
		Path:            route.Path,
		Page:            route.Page,
		Profile:         models.DefaultProfile,
		Nav:             nav,
		SidebarOpen:     open,
		BackdropVisible: open,
	}
}
