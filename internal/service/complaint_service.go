package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
)

// DialogNewComplaint is the complaint dialog.
const DialogNewComplaint = "new-complaint"

type complaintProvider interface {
	Complaints(ctx context.Context) ([]models.Complaint, error)
}

// ComplaintService builds the complaint box.
type ComplaintService struct {
	provider complaintProvider
	dialogs  dialogs
	logger   *zap.Logger
}

// NewComplaintService constructs the service.
func NewComplaintService(provider complaintProvider, forms *FormValidator, notifier notifier, metrics *MetricsService, logger *zap.Logger) *ComplaintService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComplaintService{provider: provider, dialogs: dialogs{forms: forms, notifier: notifier, metrics: metrics}, logger: logger}
}

// Page renders complaints split by status.
func (s *ComplaintService) Page(ctx context.Context, _ dto.PageQuery) (*dto.PageView, error) {
	complaints, err := s.provider.Complaints(ctx)
	if err != nil {
		s.logger.Error("load complaints", zap.Error(err))
		return nil, providerError(err, "complaints")
	}

	tabs := statusTabs(complaints,
		func(c models.Complaint) models.Status { return c.Status },
		complaintCard,
		tabSpec{Key: "pending", Label: "Pending", Status: models.StatusPending},
		tabSpec{Key: "in-progress", Label: "In Progress", Status: models.StatusInProgress},
		tabSpec{Key: "resolved", Label: "Resolved", Status: models.StatusResolved},
	)

	return &dto.PageView{
		Key:         models.PageComplaints,
		Path:        "/complaints",
		Title:       "Complaint Box",
		Description: "Submit and track campus facility complaints",
		Actions:     []dto.Action{openDialogAction("/complaints", DialogNewComplaint, "New Complaint", "plus", "")},
		Tabs:        tabs,
		ActiveTab:   tabAll,
		Dialogs: []dto.Dialog{{
			Key:         DialogNewComplaint,
			Title:       "Submit New Complaint",
			Description: "Describe your issue and we'll work to resolve it quickly",
			Action:      "/complaints/new",
			Submit:      "Submit Complaint",
			Fields: []dto.FormField{
				{Name: "category", Label: "Category *", Type: "select", Required: true, Placeholder: "Select category", Options: models.ComplaintCategories},
				{Name: "title", Label: "Title *", Type: "text", Required: true, Placeholder: "Brief description of the issue"},
				{Name: "description", Label: "Description *", Type: "textarea", Required: true, Placeholder: "Provide detailed information about your complaint..."},
			},
		}},
		Data: complaints,
	}, nil
}

// Submit validates a complaint. Nothing is stored.
func (s *ComplaintService) Submit(ctx context.Context, sessionID string, req dto.ComplaintRequest) *dto.SubmissionResult {
	values := req.Values()
	if msg := s.dialogs.forms.Check(req); msg != "" {
		return s.dialogs.reject(ctx, sessionID, DialogNewComplaint, msg, values)
	}
	return s.dialogs.accept(ctx, sessionID, DialogNewComplaint, "Complaint submitted successfully!", values)
}

func complaintCard(c models.Complaint) dto.Card {
	card := dto.Card{
		ID:    strconv.Itoa(c.ID),
		Title: c.Title,
		Body:  c.Description,
		Badge: badge(c.Status),
		Tags:  []string{c.Category},
		Fields: []dto.Field{
			{Label: "Submitted", Value: c.Date},
			{Label: "Last Updated", Value: c.UpdatedAt},
		},
	}
	if c.Resolution != "" {
		card.Alert = &dto.Alert{Title: "Resolution:", Message: c.Resolution, Tone: models.ToneSuccess}
	}
	return card
}
