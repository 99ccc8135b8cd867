package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
)

type marksProvider interface {
	InternalMarks(ctx context.Context) ([]models.InternalMark, error)
	SemesterResults(ctx context.Context) ([]models.SemesterResult, error)
	SubjectGrades(ctx context.Context) ([]models.SubjectGrade, error)
	MarksOverview(ctx context.Context) (*models.MarksOverview, error)
}

// MarksView is the typed payload of the marks page.
type MarksView struct {
	Overview *models.MarksOverview   `json:"overview"`
	Internal []models.InternalMark   `json:"internal"`
	Semester []models.SemesterResult `json:"semester"`
	Grades   []models.SubjectGrade   `json:"grades"`
}

// MarksService builds the marks and reports page.
type MarksService struct {
	provider marksProvider
	logger   *zap.Logger
}

// NewMarksService constructs the service.
func NewMarksService(provider marksProvider, logger *zap.Logger) *MarksService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarksService{provider: provider, logger: logger}
}

// Page renders the internal, semester and progress tabs.
func (s *MarksService) Page(ctx context.Context, _ dto.PageQuery) (*dto.PageView, error) {
	overview, err := s.provider.MarksOverview(ctx)
	if err != nil {
		s.logger.Error("load marks overview", zap.Error(err))
		return nil, providerError(err, "marks")
	}
	internal, err := s.provider.InternalMarks(ctx)
	if err != nil {
		s.logger.Error("load internal marks", zap.Error(err))
		return nil, providerError(err, "marks")
	}
	semesters, err := s.provider.SemesterResults(ctx)
	if err != nil {
		s.logger.Error("load semester results", zap.Error(err))
		return nil, providerError(err, "marks")
	}
	grades, err := s.provider.SubjectGrades(ctx)
	if err != nil {
		s.logger.Error("load subject grades", zap.Error(err))
		return nil, providerError(err, "marks")
	}

	return &dto.PageView{
		Key:         models.PageMarks,
		Path:        "/marks",
		Title:       "Marks & Reports",
		Description: "View your academic performance and progress reports",
		Stats: []dto.Stat{
			{Label: "Current CGPA", Value: formatGPA(overview.CGPA), Hint: "/ 10", Tone: models.ToneSuccess},
			{Label: "Current SGPA", Value: formatGPA(overview.SGPA), Hint: "/ 10", Tone: models.TonePrimary},
			{Label: "Credits Earned", Value: strconv.Itoa(overview.CreditsEarned), Hint: "/ " + strconv.Itoa(overview.CreditsRequired)},
			{Label: "Class Rank", Value: strconv.Itoa(overview.Rank), Hint: "/ " + strconv.Itoa(overview.ClassSize), Icon: "award", Tone: models.ToneWarning},
		},
		Tabs: []dto.Tab{
			{
				Key: "internal", Label: "Internal Marks", Count: len(internal),
				Actions:  reportActions(dto.ReportScopeInternal, "Download Report"),
				Sections: []dto.Section{{Key: "internal-marks", Title: "Internal Assessment Marks", Icon: "bar-chart", Table: internalTable(internal)}},
			},
			{
				Key: "semester", Label: "Semester", Count: len(semesters),
				Actions: reportActions(dto.ReportScopeSemester, "Download Transcript"),
				Sections: []dto.Section{
					{Key: "semester-results", Title: "Semester-wise Performance", Icon: "trending-up", Cards: semesterCards(semesters)},
					{Key: "subject-grades", Title: "Current Semester - Subject Grades", Table: gradesTable(grades)},
				},
			},
			{
				Key: "progress", Label: "Progress", Count: len(semesters),
				Sections: []dto.Section{progressSection(overview, semesters)},
			},
		},
		ActiveTab: "internal",
		Data:      MarksView{Overview: overview, Internal: internal, Semester: semesters, Grades: grades},
	}, nil
}

// formatGPA prints grade points the way the transcript does: as many
// decimals as needed, at least one.
func formatGPA(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func reportActions(scope, labelText string) []dto.Action {
	return []dto.Action{
		postAction("report-"+scope+"-csv", labelText+" (CSV)", "/marks/reports?scope="+scope+"&format=csv", "download", "outline"),
		postAction("report-"+scope+"-pdf", labelText+" (PDF)", "/marks/reports?scope="+scope+"&format=pdf", "download", "outline"),
	}
}

func internalTable(marks []models.InternalMark) *dto.Table {
	rows := make([][]dto.Cell, 0, len(marks))
	for _, m := range marks {
		pct := m.Percentage()
		rows = append(rows, []dto.Cell{
			{Text: m.Subject},
			{Text: fmt.Sprintf("%d/20", m.Test1)},
			{Text: fmt.Sprintf("%d/20", m.Test2)},
			{Text: fmt.Sprintf("%d/20", m.Test3)},
			{Text: fmt.Sprintf("%d/10", m.Assignment)},
			{Text: fmt.Sprintf("%d/%d", m.Total, m.Max)},
			{Text: strconv.Itoa(pct) + "%", Badge: &models.Badge{Label: strconv.Itoa(pct) + "%", Tone: models.ScoreTone(pct)}},
		})
	}
	return &dto.Table{
		Headers: []string{"Subject", "Test 1", "Test 2", "Test 3", "Assignment", "Total", "Percentage"},
		Rows:    rows,
	}
}

func semesterCards(results []models.SemesterResult) []dto.Card {
	cards := make([]dto.Card, 0, len(results))
	for i, r := range results {
		b := models.BadgeFor(r.Status)
		cards = append(cards, dto.Card{
			ID:       strconv.Itoa(i + 1),
			Title:    r.Semester,
			Subtitle: "Credits: " + strconv.Itoa(r.Credits),
			Badge:    &b,
			Fields: []dto.Field{
				{Label: "SGPA", Value: strconv.FormatFloat(r.SGPA, 'f', -1, 64)},
				{Label: "CGPA", Value: strconv.FormatFloat(r.CGPA, 'f', -1, 64)},
			},
		})
	}
	return cards
}

func gradesTable(grades []models.SubjectGrade) *dto.Table {
	rows := make([][]dto.Cell, 0, len(grades))
	for _, g := range grades {
		rows = append(rows, []dto.Cell{
			{Text: g.Code},
			{Text: g.Name},
			{Text: strconv.Itoa(g.Credits)},
			{Text: g.Grade, Badge: &models.Badge{Label: g.Grade, Tone: models.GradeTone(g.Grade)}},
			{Text: strconv.Itoa(g.Points)},
		})
	}
	return &dto.Table{Headers: []string{"Code", "Subject", "Credits", "Grade", "Points"}, Rows: rows}
}

func progressSection(o *models.MarksOverview, semesters []models.SemesterResult) dto.Section {
	credits := 0
	if o.CreditsRequired > 0 {
		credits = int(math.Round(float64(o.CreditsEarned) / float64(o.CreditsRequired) * 100))
	}
	cards := []dto.Card{
		{
			ID:       "overall",
			Title:    "Overall Progress",
			Subtitle: fmt.Sprintf("%d out of %d years completed", o.YearsCompleted, o.YearsTotal),
			Progress: &dto.Progress{Label: strconv.Itoa(o.OverallProgress) + "%", Value: o.OverallProgress, Tone: models.TonePrimary},
		},
		{
			ID:       "credits",
			Title:    "Credit Completion",
			Progress: &dto.Progress{Label: fmt.Sprintf("%d/%d credits", o.CreditsEarned, o.CreditsRequired), Value: credits, Tone: models.TonePrimary},
		},
	}
	for i, sem := range semesters {
		cards = append(cards, dto.Card{
			ID:       "cgpa-" + strconv.Itoa(i+1),
			Title:    sem.Semester,
			Tags:     []string{"CGPA Trend"},
			Progress: &dto.Progress{Label: strconv.FormatFloat(sem.CGPA, 'f', -1, 64), Value: int(math.Round(sem.CGPA * 10)), Tone: models.ToneAccent},
		})
	}
	return dto.Section{Key: "progress", Title: "Academic Progress", Cards: cards, Items: o.Summary}
}
