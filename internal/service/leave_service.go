package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
)

// Leave dialogs.
const (
	DialogLeave  = "leave"
	DialogOnDuty = "on-duty"
)

type leaveProvider interface {
	LeaveApplications(ctx context.Context) ([]models.LeaveApplication, error)
	OnDutyApplications(ctx context.Context) ([]models.OnDutyApplication, error)
	HallTickets(ctx context.Context) ([]models.HallTicket, error)
}

// LeaveView is the typed payload of the leave page.
type LeaveView struct {
	Leave       []models.LeaveApplication  `json:"leave"`
	OnDuty      []models.OnDutyApplication `json:"onDuty"`
	HallTickets []models.HallTicket        `json:"hallTickets"`
}

// LeaveService builds the leave and on-duty page.
type LeaveService struct {
	provider leaveProvider
	dialogs  dialogs
	logger   *zap.Logger
}

// NewLeaveService constructs the service.
func NewLeaveService(provider leaveProvider, forms *FormValidator, notifier notifier, metrics *MetricsService, logger *zap.Logger) *LeaveService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeaveService{provider: provider, dialogs: dialogs{forms: forms, notifier: notifier, metrics: metrics}, logger: logger}
}

// Page renders the leave, on-duty and hall ticket tabs.
func (s *LeaveService) Page(ctx context.Context, _ dto.PageQuery) (*dto.PageView, error) {
	leaves, err := s.provider.LeaveApplications(ctx)
	if err != nil {
		s.logger.Error("load leave applications", zap.Error(err))
		return nil, providerError(err, "leave applications")
	}
	onDuty, err := s.provider.OnDutyApplications(ctx)
	if err != nil {
		s.logger.Error("load on-duty applications", zap.Error(err))
		return nil, providerError(err, "on-duty applications")
	}
	tickets, err := s.provider.HallTickets(ctx)
	if err != nil {
		s.logger.Error("load hall tickets", zap.Error(err))
		return nil, providerError(err, "hall tickets")
	}

	leaveCards := make([]dto.Card, 0, len(leaves))
	for _, l := range leaves {
		card := dto.Card{
			ID:       strconv.Itoa(l.ID),
			Title:    l.Type,
			Subtitle: l.FromDate + " to " + l.ToDate,
			Badge:    badge(l.Status),
			Fields: []dto.Field{
				{Label: "Reason", Value: l.Reason},
				{Label: "Applied", Value: l.AppliedOn},
			},
		}
		if l.ApprovedBy != "" {
			card.Fields = append(card.Fields, dto.Field{Label: "Approved by", Value: l.ApprovedBy})
		}
		leaveCards = append(leaveCards, card)
	}

	onDutyCards := make([]dto.Card, 0, len(onDuty))
	for _, o := range onDuty {
		onDutyCards = append(onDutyCards, dto.Card{
			ID:       strconv.Itoa(o.ID),
			Title:    o.Event,
			Subtitle: o.Venue,
			Badge:    badge(o.Status),
			Fields: []dto.Field{
				{Label: "Duration", Value: o.FromDate + " to " + o.ToDate},
				{Label: "Applied", Value: o.AppliedOn},
			},
		})
	}

	ticketCards := make([]dto.Card, 0, len(tickets))
	for _, t := range tickets {
		id := strconv.Itoa(t.ID)
		ticketCards = append(ticketCards, dto.Card{
			ID:    id,
			Title: t.Exam,
			Fields: []dto.Field{
				{Label: "Start Date", Value: t.StartDate},
				{Label: "End Date", Value: t.EndDate},
				{Label: "Venue", Value: t.Venue},
				{Label: "Seat Number", Value: t.SeatNo},
			},
			Alert:   &dto.Alert{Title: "Important Instructions", Tone: models.ToneAccent},
			Notes:   t.Instructions,
			Actions: []dto.Action{postAction("download", "Download", "/leave/hall-tickets/"+id+"/download", "download", "")},
		})
	}

	return &dto.PageView{
		Key:         models.PageLeave,
		Path:        "/leave",
		Title:       "Leave & On-Duty",
		Description: "Apply for leave and on-duty requests",
		Tabs: []dto.Tab{
			{
				Key: "leave", Label: "Leave", Count: len(leaveCards), Cards: leaveCards,
				Actions: []dto.Action{openDialogAction("/leave", DialogLeave, "Apply Leave", "plus", "")},
			},
			{
				Key: "onduty", Label: "On-Duty", Count: len(onDutyCards), Cards: onDutyCards,
				Actions: []dto.Action{openDialogAction("/leave", DialogOnDuty, "Apply On-Duty", "plus", "")},
			},
			{Key: "hallticket", Label: "Hall Ticket", Count: len(ticketCards), Cards: ticketCards},
		},
		ActiveTab: "leave",
		Dialogs: []dto.Dialog{
			{
				Key:         DialogLeave,
				Title:       "Apply for Leave",
				Description: "Fill in the details for your leave request",
				Action:      "/leave/apply",
				Submit:      "Submit Application",
				Fields: []dto.FormField{
					{Name: "type", Label: "Leave Type *", Type: "select", Required: true, Placeholder: "Select leave type", Options: models.LeaveTypes},
					{Name: "from_date", Label: "From Date *", Type: "date", Required: true},
					{Name: "to_date", Label: "To Date *", Type: "date", Required: true},
					{Name: "reason", Label: "Reason *", Type: "textarea", Required: true, Placeholder: "Please provide a reason for your leave..."},
				},
			},
			{
				Key:         DialogOnDuty,
				Title:       "Apply for On-Duty",
				Description: "Fill in the details for your on-duty request",
				Action:      "/leave/on-duty",
				Submit:      "Submit Application",
				Fields: []dto.FormField{
					{Name: "event", Label: "Event Name *", Type: "text", Required: true, Placeholder: "e.g., Technical Symposium"},
					{Name: "venue", Label: "Venue *", Type: "text", Required: true, Placeholder: "e.g., IIT Chennai"},
					{Name: "from_date", Label: "From Date *", Type: "date", Required: true},
					{Name: "to_date", Label: "To Date *", Type: "date", Required: true},
					{Name: "description", Label: "Description *", Type: "textarea", Required: true, Placeholder: "Provide details about the event..."},
				},
			},
		},
		Data: LeaveView{Leave: leaves, OnDuty: onDuty, HallTickets: tickets},
	}, nil
}

// ApplyLeave validates a leave request. Nothing is stored.
func (s *LeaveService) ApplyLeave(ctx context.Context, sessionID string, req dto.LeaveRequest) *dto.SubmissionResult {
	values := req.Values()
	msg := s.dialogs.forms.Check(req)
	if msg == "" {
		msg = checkDateRange(req.FromDate, req.ToDate)
	}
	if msg != "" {
		return s.dialogs.reject(ctx, sessionID, DialogLeave, msg, values)
	}
	return s.dialogs.accept(ctx, sessionID, DialogLeave, "Leave application submitted!", values)
}

// ApplyOnDuty validates an on-duty request. Nothing is stored.
func (s *LeaveService) ApplyOnDuty(ctx context.Context, sessionID string, req dto.OnDutyRequest) *dto.SubmissionResult {
	values := req.Values()
	msg := s.dialogs.forms.Check(req)
	if msg == "" {
		msg = checkDateRange(req.FromDate, req.ToDate)
	}
	if msg != "" {
		return s.dialogs.reject(ctx, sessionID, DialogOnDuty, msg, values)
	}
	return s.dialogs.accept(ctx, sessionID, DialogOnDuty, "On-duty application submitted!", values)
}
