package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

// Event actions.
const (
	EventActionLike  = "like"
	EventActionShare = "share"
)

type eventProvider interface {
	Events(ctx context.Context) ([]models.Event, error)
	Announcements(ctx context.Context) ([]models.Announcement, error)
}

// EventView is the typed payload of the events page.
type EventView struct {
	Announcements []models.Announcement `json:"announcements"`
	Events        []models.Event        `json:"events"`
}

// EventService builds the events page and handles like/share.
type EventService struct {
	provider eventProvider
	notifier notifier
	logger   *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(provider eventProvider, notifier notifier, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{provider: provider, notifier: notifier, logger: logger}
}

// Page renders announcements followed by the event cards.
func (s *EventService) Page(ctx context.Context, _ dto.PageQuery) (*dto.PageView, error) {
	announcements, err := s.provider.Announcements(ctx)
	if err != nil {
		s.logger.Error("load announcements", zap.Error(err))
		return nil, providerError(err, "announcements")
	}
	events, err := s.provider.Events(ctx)
	if err != nil {
		s.logger.Error("load events", zap.Error(err))
		return nil, providerError(err, "events")
	}

	notices := make([]dto.Card, 0, len(announcements))
	for i, a := range announcements {
		notices = append(notices, dto.Card{ID: strconv.Itoa(i + 1), Title: a.Title, Subtitle: a.Date, Badge: label(a.Type)})
	}

	cards := make([]dto.Card, 0, len(events))
	for _, e := range events {
		id := strconv.Itoa(e.ID)
		cards = append(cards, dto.Card{
			ID:    id,
			Title: e.Title,
			Body:  e.Description,
			Image: e.Image,
			Badge: label(e.Category),
			Fields: []dto.Field{
				{Label: "Date", Value: e.Date, Icon: "calendar"},
				{Label: "Location", Value: e.Location, Icon: "map-pin"},
				{Label: "Attending", Value: strconv.Itoa(e.Attendees) + " attending", Icon: "users"},
				{Label: "Comments", Value: strconv.Itoa(e.Comments), Icon: "message-circle"},
			},
			Actions: []dto.Action{
				postAction(EventActionLike, strconv.Itoa(e.Likes), "/events/"+id+"/like", "heart", "ghost"),
				postAction(EventActionShare, "Share", "/events/"+id+"/share", "share", "ghost"),
			},
		})
	}

	return &dto.PageView{
		Key:         models.PageEvents,
		Path:        "/events",
		Title:       "Events & Announcements",
		Description: "Stay updated with campus events and important announcements",
		Sections: []dto.Section{
			{Key: "announcements", Title: "Important Announcements", Cards: notices},
			{Key: "events", Title: "Events", Cards: cards},
		},
		Data: EventView{Announcements: announcements, Events: events},
	}, nil
}

// Act likes or shares an event. Counts never change.
func (s *EventService) Act(ctx context.Context, sessionID, rawID, action string) (*dto.ActionResult, error) {
	var message string
	switch action {
	case EventActionLike:
		message = "Event liked!"
	case EventActionShare:
		message = "Event link copied to clipboard!"
	default:
		return nil, appErrors.Clone(appErrors.ErrNotFound, "unknown event action")
	}
	id, err := parseID(rawID, "event")
	if err != nil {
		return nil, err
	}
	events, err := s.provider.Events(ctx)
	if err != nil {
		s.logger.Error("load events", zap.Error(err))
		return nil, providerError(err, "events")
	}
	for _, e := range events {
		if e.ID == id {
			n := s.notifier.Success(ctx, sessionID, message)
			return &dto.ActionResult{Action: action, Notification: &n}, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
}
