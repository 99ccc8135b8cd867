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

// Connect actions.
const (
	ConnectActionConnect = "connect"
	ConnectActionMessage = "message"
)

type peopleProvider interface {
	People(ctx context.Context, kind models.PersonKind) ([]models.Person, error)
}

// ConnectService builds the networking directory.
type ConnectService struct {
	provider peopleProvider
	notifier notifier
	logger   *zap.Logger
}

// NewConnectService constructs the service.
func NewConnectService(provider peopleProvider, notifier notifier, logger *zap.Logger) *ConnectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConnectService{provider: provider, notifier: notifier, logger: logger}
}

// Page renders one tab per directory kind, filtered by the search query.
func (s *ConnectService) Page(ctx context.Context, q dto.PageQuery) (*dto.PageView, error) {
	query := strings.TrimSpace(q.Search)
	tabs := make([]dto.Tab, 0, len(models.PersonKinds))
	directory := make(map[models.PersonKind][]models.Person, len(models.PersonKinds))
	for _, kind := range models.PersonKinds {
		people, err := s.provider.People(ctx, kind)
		if err != nil {
			s.logger.Error("load people", zap.String("kind", string(kind)), zap.Error(err))
			return nil, providerError(err, string(kind))
		}
		matched := make([]models.Person, 0, len(people))
		cards := make([]dto.Card, 0, len(people))
		for _, p := range people {
			if !p.Matches(query) {
				continue
			}
			matched = append(matched, p)
			cards = append(cards, personCard(p))
		}
		directory[kind] = matched
		tabs = append(tabs, dto.Tab{Key: string(kind), Label: kindLabel(kind), Count: len(cards), Cards: cards})
	}

	return &dto.PageView{
		Key:         models.PageConnect,
		Path:        "/connect",
		Title:       "Connect & Network",
		Description: "Build your professional network with students, teachers, and alumni",
		Tabs:        tabs,
		ActiveTab:   string(models.PersonStudent),
		Data:        directory,
	}, nil
}

// Act sends a connection request or opens a chat. The directory never changes.
func (s *ConnectService) Act(ctx context.Context, sessionID, kind, rawID, action string) (*dto.ActionResult, error) {
	if action != ConnectActionConnect && action != ConnectActionMessage {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "unknown connect action")
	}
	personKind := models.PersonKind(kind)
	known := false
	for _, k := range models.PersonKinds {
		if k == personKind {
			known = true
			break
		}
	}
	if !known {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "unknown directory "+kind)
	}
	id, err := parseID(rawID, "person")
	if err != nil {
		return nil, err
	}
	people, err := s.provider.People(ctx, personKind)
	if err != nil {
		s.logger.Error("load people", zap.String("kind", kind), zap.Error(err))
		return nil, providerError(err, kind)
	}
	for _, p := range people {
		if p.ID != id {
			continue
		}
		message := "Connection request sent to " + p.Name
		if action == ConnectActionMessage {
			message = "Opening chat with " + p.Name
		}
		n := s.notifier.Success(ctx, sessionID, message)
		return &dto.ActionResult{Action: action, Notification: &n}, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "person not found")
}

func kindLabel(kind models.PersonKind) string {
	switch kind {
	case models.PersonStudent:
		return "Students"
	case models.PersonTeacher:
		return "Teachers"
	default:
		return "Alumni"
	}
}

func personCard(p models.Person) dto.Card {
	id := strconv.Itoa(p.ID)
	base := "/connect/" + string(p.Kind) + "/" + id
	card := dto.Card{
		ID:     id,
		Title:  p.Name,
		Avatar: p.Initials(),
		Badge:  label(p.Role),
		Fields: []dto.Field{{Label: "Location", Value: p.Location, Icon: "map-pin"}},
	}
	switch p.Kind {
	case models.PersonStudent:
		card.Subtitle = p.Department + " • " + p.Year
		card.Tags = p.Interests
	case models.PersonTeacher:
		card.Subtitle = p.Role + " • " + p.Department
		card.Fields = append(card.Fields,
			dto.Field{Label: "Specialization", Value: p.Specialization},
			dto.Field{Label: "Experience", Value: p.Experience},
		)
	case models.PersonAlumni:
		card.Subtitle = p.Department + " • " + p.Batch
		card.Fields = append(card.Fields, dto.Field{Label: "Current Role", Value: p.CurrentRole, Icon: "briefcase"})
	}
	if p.Connected {
		card.Actions = []dto.Action{
			postAction(ConnectActionMessage, "Message", base+"/message", "mail", "outline"),
			{Key: "connected", Label: "Connected", Method: "GET", Href: "/connect", Variant: "secondary", Disabled: true},
		}
	} else {
		card.Actions = []dto.Action{postAction(ConnectActionConnect, "Connect", base+"/connect", "user-plus", "")}
	}
	return card
}
