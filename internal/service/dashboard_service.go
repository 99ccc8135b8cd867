package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
)

type dashboardProvider interface {
	DashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
}

// DashboardService builds the landing page from its own fixtures.
type DashboardService struct {
	provider dashboardProvider
	logger   *zap.Logger
}

// NewDashboardService constructs the service.
func NewDashboardService(provider dashboardProvider, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{provider: provider, logger: logger}
}

// Page renders the dashboard.
func (s *DashboardService) Page(ctx context.Context, _ dto.PageQuery) (*dto.PageView, error) {
	summary, err := s.provider.DashboardSummary(ctx)
	if err != nil {
		s.logger.Error("load dashboard", zap.Error(err))
		return nil, providerError(err, "dashboard")
	}

	stats := make([]dto.Stat, 0, len(summary.Stats))
	for _, st := range summary.Stats {
		stats = append(stats, dto.Stat{Label: st.Title, Value: st.Value, Icon: st.Icon, Tone: st.Tone})
	}

	assignments := make([]dto.Card, 0, len(summary.RecentAssignments))
	for i, a := range summary.RecentAssignments {
		assignments = append(assignments, dto.Card{
			ID:       strconv.Itoa(i + 1),
			Title:    a.Title,
			Subtitle: a.Subject,
			Fields:   []dto.Field{{Label: "Due", Value: a.Deadline}},
			Badge:    digestBadge(a.Status),
		})
	}

	events := make([]dto.Card, 0, len(summary.UpcomingEvents))
	for i, e := range summary.UpcomingEvents {
		events = append(events, dto.Card{ID: strconv.Itoa(i + 1), Title: e.Title, Subtitle: e.Date, Badge: label(e.Type)})
	}

	attendance := make([]dto.Card, 0, len(summary.Attendance))
	for i, a := range summary.Attendance {
		tone := models.PercentageTone(a.Percentage)
		attendance = append(attendance, dto.Card{
			ID:       strconv.Itoa(i + 1),
			Title:    a.Subject,
			Progress: &dto.Progress{Label: strconv.Itoa(a.Percentage) + "%", Value: a.Percentage, Tone: tone},
		})
	}

	return &dto.PageView{
		Key:         models.PageDashboard,
		Path:        "/",
		Title:       summary.Greeting,
		Description: "Here's what's happening in your campus today.",
		Stats:       stats,
		Sections: []dto.Section{
			{Key: "recent-assignments", Title: "Recent Assignments", Icon: "book-open", Cards: assignments},
			{Key: "upcoming-events", Title: "Upcoming Events", Icon: "clock", Cards: events},
			{Key: "attendance-overview", Title: "Attendance Overview", Cards: attendance},
		},
		Data: summary,
	}, nil
}

// digestBadge is the dashboard's two state presentation: submitted or pending.
func digestBadge(status models.Status) *models.Badge {
	if status == models.StatusSubmitted {
		return &models.Badge{Label: "Submitted", Tone: models.ToneSuccess, Icon: "check-circle"}
	}
	return &models.Badge{Label: "Pending", Tone: models.ToneWarning, Icon: "alert-circle"}
}
