package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

// DialogSubmitAssignment is the assignment upload dialog.
const DialogSubmitAssignment = "submit-assignment"

type assignmentProvider interface {
	Assignments(ctx context.Context) ([]models.Assignment, error)
}

// AssignmentService builds the assignments page and accepts submissions.
type AssignmentService struct {
	provider assignmentProvider
	dialogs  dialogs
	logger   *zap.Logger
}

// NewAssignmentService constructs the service.
func NewAssignmentService(provider assignmentProvider, forms *FormValidator, notifier notifier, metrics *MetricsService, logger *zap.Logger) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{provider: provider, dialogs: dialogs{forms: forms, notifier: notifier, metrics: metrics}, logger: logger}
}

// Page renders the assignments list split by status.
func (s *AssignmentService) Page(ctx context.Context, _ dto.PageQuery) (*dto.PageView, error) {
	assignments, err := s.provider.Assignments(ctx)
	if err != nil {
		s.logger.Error("load assignments", zap.Error(err))
		return nil, providerError(err, "assignments")
	}

	tabs := statusTabs(assignments,
		func(a models.Assignment) models.Status { return a.Status },
		assignmentCard,
		tabSpec{Key: "pending", Label: "Pending", Status: models.StatusPending},
		tabSpec{Key: "submitted", Label: "Submitted", Status: models.StatusSubmitted},
		tabSpec{Key: "graded", Label: "Graded", Status: models.StatusGraded},
	)

	return &dto.PageView{
		Key:         models.PageAssignments,
		Path:        "/assignments",
		Title:       "Assignments",
		Description: "Manage and submit your course assignments",
		Tabs:        tabs,
		ActiveTab:   tabAll,
		Dialogs:     []dto.Dialog{submitAssignmentDialog()},
		Data:        assignments,
	}, nil
}

// Submit validates an upload. Only pending assignments accept submissions and
// the list is left unchanged.
func (s *AssignmentService) Submit(ctx context.Context, sessionID string, req dto.AssignmentSubmissionRequest) (*dto.SubmissionResult, error) {
	values := req.Values()
	if msg := s.dialogs.forms.Check(req); msg != "" {
		return s.dialogs.reject(ctx, sessionID, DialogSubmitAssignment, msg, values), nil
	}

	id, err := parseID(strings.TrimSpace(req.AssignmentID), "assignment")
	if err != nil {
		return nil, err
	}
	assignments, err := s.provider.Assignments(ctx)
	if err != nil {
		s.logger.Error("load assignments", zap.Error(err))
		return nil, providerError(err, "assignments")
	}
	var target *models.Assignment
	for i := range assignments {
		if assignments[i].ID == id {
			target = &assignments[i]
			break
		}
	}
	if target == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "assignment not found")
	}
	if target.Status != models.StatusPending {
		return s.dialogs.reject(ctx, sessionID, DialogSubmitAssignment, "This assignment is no longer accepting submissions", values), nil
	}
	return s.dialogs.accept(ctx, sessionID, DialogSubmitAssignment, "Assignment submitted successfully!", values), nil
}

func assignmentCard(a models.Assignment) dto.Card {
	card := dto.Card{
		ID:       strconv.Itoa(a.ID),
		Title:    a.Title,
		Subtitle: a.Subject,
		Body:     a.Description,
		Badge:    assignmentBadge(a.Status),
		Fields: []dto.Field{
			{Label: "Due", Value: a.Deadline, Icon: "calendar"},
			{Label: "Points", Value: strconv.Itoa(a.Points), Icon: "file-text"},
		},
	}
	switch a.Status {
	case models.StatusGraded:
		if a.Grade != nil {
			card.Alert = &dto.Alert{Message: "Grade: " + strconv.Itoa(*a.Grade) + "/" + strconv.Itoa(a.Points), Tone: models.ToneSuccess}
		}
	case models.StatusSubmitted:
		if a.SubmittedOn != "" {
			card.Fields = append(card.Fields, dto.Field{Label: "Submitted on", Value: a.SubmittedOn})
		}
	case models.StatusPending:
		card.Actions = []dto.Action{openDialogAction("/assignments", DialogSubmitAssignment, "Submit Assignment", "upload", strconv.Itoa(a.ID))}
	}
	return card
}

// assignmentBadge flags statuses outside the shared table as destructive.
func assignmentBadge(status models.Status) *models.Badge {
	if !models.Known(status) {
		return &models.Badge{Label: string(status), Tone: models.ToneDestructive, Icon: "x-circle"}
	}
	return badge(status)
}

func submitAssignmentDialog() dto.Dialog {
	return dto.Dialog{
		Key:         DialogSubmitAssignment,
		Title:       "Submit Assignment",
		Description: "Upload your assignment file and add any notes for your teacher.",
		Action:      "/assignments/submit",
		Submit:      "Submit",
		TargetField: "assignment_id",
		Fields: []dto.FormField{
			{Name: "assignment_id", Type: "hidden", Required: true},
			{Name: "file_name", Label: "Assignment File", Type: "file", Accept: strings.Join(models.AcceptedSubmissionExtensions, ",")},
			{Name: "notes", Label: "Notes (Optional)", Type: "textarea", Placeholder: "Add any notes or comments for your teacher..."},
		},
	}
}
