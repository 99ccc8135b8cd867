package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

type attendanceProvider interface {
	SubjectAttendance(ctx context.Context) ([]models.SubjectAttendance, error)
	RecentAttendance(ctx context.Context) ([]models.AttendanceEntry, error)
	AttendanceTotals(ctx context.Context) (*models.AttendanceTotals, error)
}

// AttendanceView is the typed payload of the attendance page.
type AttendanceView struct {
	Overall      int                        `json:"overall"`
	Totals       models.AttendanceTotals    `json:"totals"`
	Subjects     []models.SubjectAttendance `json:"subjects"`
	Recent       []models.AttendanceEntry   `json:"recent"`
	SelectedDate string                     `json:"selectedDate"`
}

// AttendanceService builds the attendance page.
type AttendanceService struct {
	provider attendanceProvider
	logger   *zap.Logger
	now      func() time.Time
}

// NewAttendanceService constructs the service.
func NewAttendanceService(provider attendanceProvider, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{provider: provider, logger: logger, now: time.Now}
}

// OverallPercentage is the rounded mean of the stored subject percentages.
func OverallPercentage(subjects []models.SubjectAttendance) int {
	if len(subjects) == 0 {
		return 0
	}
	sum := 0
	for _, s := range subjects {
		sum += s.Percentage
	}
	return int(math.Round(float64(sum) / float64(len(subjects))))
}

// Page renders attendance for the selected calendar date (today by default).
func (s *AttendanceService) Page(ctx context.Context, q dto.PageQuery) (*dto.PageView, error) {
	selected := s.now()
	if raw := strings.TrimSpace(q.Date); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid date format, expected YYYY-MM-DD")
		}
		selected = parsed
	}

	subjects, err := s.provider.SubjectAttendance(ctx)
	if err != nil {
		s.logger.Error("load subject attendance", zap.Error(err))
		return nil, providerError(err, "attendance")
	}
	recent, err := s.provider.RecentAttendance(ctx)
	if err != nil {
		s.logger.Error("load recent attendance", zap.Error(err))
		return nil, providerError(err, "attendance")
	}
	totals, err := s.provider.AttendanceTotals(ctx)
	if err != nil {
		s.logger.Error("load attendance totals", zap.Error(err))
		return nil, providerError(err, "attendance")
	}

	overall := OverallPercentage(subjects)

	subjectCards := make([]dto.Card, 0, len(subjects))
	for i, subj := range subjects {
		card := dto.Card{
			ID:       strconv.Itoa(i + 1),
			Title:    subj.Name,
			Subtitle: fmt.Sprintf("%d / %d classes", subj.Present, subj.Total),
			Progress: &dto.Progress{Label: strconv.Itoa(subj.Percentage) + "%", Value: subj.Percentage, Tone: models.PercentageTone(subj.Percentage)},
		}
		if subj.Percentage < models.MinimumAttendance {
			card.Alert = &dto.Alert{Message: fmt.Sprintf("Below minimum requirement (%d%%)", models.MinimumAttendance), Tone: models.ToneDestructive}
		}
		subjectCards = append(subjectCards, card)
	}

	recentCards := make([]dto.Card, 0, len(recent))
	for i, entry := range recent {
		recentCards = append(recentCards, dto.Card{ID: strconv.Itoa(i + 1), Title: entry.Subject, Subtitle: entry.Date, Badge: badge(entry.Status)})
	}

	return &dto.PageView{
		Key:         models.PageAttendance,
		Path:        "/attendance",
		Title:       "Attendance",
		Description: "Track your class attendance and performance",
		Stats: []dto.Stat{
			{Label: "Overall Attendance", Value: strconv.Itoa(overall) + "%", Tone: models.PercentageTone(overall)},
			{Label: "Total Classes", Value: strconv.Itoa(totals.TotalClasses), Icon: "calendar"},
			{Label: "Classes Attended", Value: strconv.Itoa(totals.Attended), Icon: "trending-up", Tone: models.ToneSuccess},
		},
		Sections: []dto.Section{
			{Key: "subjects", Title: "Subject-wise Attendance", Icon: "trending-up", Cards: subjectCards},
			calendarSection(selected),
			{Key: "recent", Title: "Recent Attendance", Cards: recentCards},
		},
		Data: AttendanceView{
			Overall:      overall,
			Totals:       *totals,
			Subjects:     subjects,
			Recent:       recent,
			SelectedDate: selected.Format(dateLayout),
		},
	}, nil
}

// calendarSection lays out the selected date's month, Sunday first. The
// selected day is marked with a badge.
func calendarSection(selected time.Time) dto.Section {
	first := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	rows := [][]dto.Cell{}
	week := make([]dto.Cell, 7)
	col := int(first.Weekday())
	for day := 1; day <= days; day++ {
		cell := dto.Cell{Text: strconv.Itoa(day)}
		if day == selected.Day() {
			cell.Badge = &models.Badge{Label: strconv.Itoa(day), Tone: models.TonePrimary}
		}
		week[col] = cell
		col++
		if col == 7 {
			rows = append(rows, week)
			week = make([]dto.Cell, 7)
			col = 0
		}
	}
	if col > 0 {
		rows = append(rows, week)
	}

	prev := first.AddDate(0, -1, 0).Format(dateLayout)
	next := first.AddDate(0, 1, 0).Format(dateLayout)
	return dto.Section{
		Key:    "calendar",
		Title:  "Calendar",
		Icon:   "calendar",
		Fields: []dto.Field{{Label: first.Format("January 2006"), Value: selected.Format(dateLayout)}},
		Table: &dto.Table{
			Headers: []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
			Rows:    rows,
		},
		Actions: []dto.Action{
			{Key: "previous-month", Label: "Previous", Method: "GET", Href: "/attendance?date=" + prev, Icon: "chevron-left"},
			{Key: "next-month", Label: "Next", Method: "GET", Href: "/attendance?date=" + next, Icon: "chevron-right"},
		},
	}
}
