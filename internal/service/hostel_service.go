package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
)

// Hostel dialogs.
const (
	DialogGatepass = "gatepass"
	DialogGym      = "gym"
)

const defaultGymPlan = "monthly"

type hostelProvider interface {
	Gatepasses(ctx context.Context) ([]models.Gatepass, error)
	GymSubscriptions(ctx context.Context) ([]models.GymSubscription, error)
	GymPlans(ctx context.Context) ([]models.GymPlan, error)
	HostelOverview(ctx context.Context) (*models.HostelOverview, error)
}

// HostelView is the typed payload of the hostel page.
type HostelView struct {
	Overview      *models.HostelOverview   `json:"overview"`
	Gatepasses    []models.Gatepass        `json:"gatepasses"`
	Subscriptions []models.GymSubscription `json:"subscriptions"`
	Plans         []models.GymPlan         `json:"plans"`
}

// HostelService builds the hostel page and handles its dialogs.
type HostelService struct {
	provider hostelProvider
	dialogs  dialogs
	logger   *zap.Logger
}

// NewHostelService constructs the service.
func NewHostelService(provider hostelProvider, forms *FormValidator, notifier notifier, metrics *MetricsService, logger *zap.Logger) *HostelService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HostelService{provider: provider, dialogs: dialogs{forms: forms, notifier: notifier, metrics: metrics}, logger: logger}
}

// Page renders the gatepass and gym sections.
func (s *HostelService) Page(ctx context.Context, _ dto.PageQuery) (*dto.PageView, error) {
	overview, err := s.provider.HostelOverview(ctx)
	if err != nil {
		s.logger.Error("load hostel overview", zap.Error(err))
		return nil, providerError(err, "hostel")
	}
	passes, err := s.provider.Gatepasses(ctx)
	if err != nil {
		s.logger.Error("load gatepasses", zap.Error(err))
		return nil, providerError(err, "gatepasses")
	}
	subs, err := s.provider.GymSubscriptions(ctx)
	if err != nil {
		s.logger.Error("load gym subscriptions", zap.Error(err))
		return nil, providerError(err, "gym subscriptions")
	}
	plans, err := s.provider.GymPlans(ctx)
	if err != nil {
		s.logger.Error("load gym plans", zap.Error(err))
		return nil, providerError(err, "gym plans")
	}

	pending := 0
	passCards := make([]dto.Card, 0, len(passes))
	for _, p := range passes {
		if p.Status == models.StatusPending {
			pending++
		}
		passCards = append(passCards, dto.Card{
			ID:       strconv.Itoa(p.ID),
			Title:    p.Type,
			Subtitle: p.FromDate + " to " + p.ToDate,
			Badge:    badge(p.Status),
			Fields: []dto.Field{
				{Label: "Reason", Value: p.Reason},
				{Label: "Applied", Value: p.AppliedOn},
			},
		})
	}

	gymStatus := dto.Stat{Label: "Gym Status", Value: "Inactive", Icon: "dumbbell", Tone: models.ToneMuted}
	subCards := make([]dto.Card, 0, len(subs))
	for _, sub := range subs {
		if sub.Status == models.StatusActive {
			gymStatus.Value, gymStatus.Tone = "Active", models.ToneSuccess
		}
		subCards = append(subCards, dto.Card{
			ID:       strconv.Itoa(sub.ID),
			Title:    sub.Plan + " Plan",
			Subtitle: sub.StartDate + " to " + sub.EndDate,
			Badge:    badge(sub.Status),
			Fields:   []dto.Field{{Label: "Amount", Value: rupees(sub.Amount)}},
		})
	}

	planOptions := make([]models.Option, 0, len(plans))
	for _, p := range plans {
		hint := "Access for " + strconv.Itoa(p.Days) + " days"
		if p.Savings > 0 {
			hint += " - Save " + rupees(p.Savings)
		}
		planOptions = append(planOptions, models.Option{Value: p.Key, Label: p.Name + " " + rupees(p.Price), Hint: hint})
	}

	return &dto.PageView{
		Key:         models.PageHostel,
		Path:        "/hostel",
		Title:       "Hostel Management",
		Description: "Manage gatepass, gym subscription, and hostel facilities",
		Stats: []dto.Stat{
			{Label: "Room Number", Value: overview.Room, Icon: "home", Tone: models.TonePrimary},
			{Label: "Pending Gatepasses", Value: strconv.Itoa(pending), Icon: "file-check", Tone: models.ToneWarning},
			gymStatus,
		},
		Sections: []dto.Section{
			{
				Key: "gatepasses", Title: "Gatepass Management", Icon: "file-check", Cards: passCards,
				Actions: []dto.Action{openDialogAction("/hostel", DialogGatepass, "Apply", "plus", "")},
			},
			{
				Key: "gym", Title: "Gym Subscription", Icon: "dumbbell", Cards: subCards,
				Items:   overview.Timings,
				Actions: []dto.Action{openDialogAction("/hostel", DialogGym, "Subscribe", "plus", "")},
			},
		},
		Dialogs: []dto.Dialog{
			{
				Key:         DialogGatepass,
				Title:       "Apply for Gatepass",
				Description: "Fill in the details for your gatepass request",
				Action:      "/hostel/gatepass",
				Submit:      "Submit Application",
				Fields: []dto.FormField{
					{Name: "from_date", Label: "From Date *", Type: "date", Required: true},
					{Name: "to_date", Label: "To Date *", Type: "date", Required: true},
					{Name: "reason", Label: "Reason *", Type: "textarea", Required: true, Placeholder: "Please provide a reason for your gatepass..."},
				},
			},
			{
				Key:         DialogGym,
				Title:       "Gym Subscription",
				Description: "Choose your subscription plan",
				Action:      "/hostel/gym",
				Submit:      "Proceed to Payment",
				Fields: []dto.FormField{
					{Name: "plan", Label: "Plan", Type: "radio", Value: defaultGymPlan, Options: planOptions},
				},
			},
		},
		Data: HostelView{Overview: overview, Gatepasses: passes, Subscriptions: subs, Plans: plans},
	}, nil
}

// ApplyGatepass validates a gatepass request. Missing dates are reported
// before anything else.
func (s *HostelService) ApplyGatepass(ctx context.Context, sessionID string, req dto.GatepassRequest) *dto.SubmissionResult {
	values := req.Values()
	msg := ""
	if strings.TrimSpace(req.FromDate) == "" || strings.TrimSpace(req.ToDate) == "" {
		msg = msgSelectDates
	}
	if msg == "" {
		msg = s.dialogs.forms.Check(req)
	}
	if msg == "" {
		msg = checkDateRange(req.FromDate, req.ToDate)
	}
	if msg != "" {
		return s.dialogs.reject(ctx, sessionID, DialogGatepass, msg, values)
	}
	return s.dialogs.accept(ctx, sessionID, DialogGatepass, "Gatepass application submitted!", values)
}

// SubscribeGym starts a gym payment. No plan means the monthly plan.
func (s *HostelService) SubscribeGym(ctx context.Context, sessionID string, req dto.GymSubscriptionRequest) *dto.SubmissionResult {
	values := req.Values()
	if msg := s.dialogs.forms.Check(req); msg != "" {
		return s.dialogs.reject(ctx, sessionID, DialogGym, msg, values)
	}
	result := s.dialogs.accept(ctx, sessionID, DialogGym, "Gym subscription payment initiated!", values)
	result.Form["plan"] = defaultGymPlan
	return result
}

// rupees formats an amount with Indian digit grouping for the sums shown.
func rupees(amount int) string {
	digits := strconv.Itoa(amount)
	if len(digits) <= 3 {
		return "₹" + digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	groups := make([]string, 0, len(head)/2+1)
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return "₹" + strings.Join(groups, ",") + "," + tail
}
