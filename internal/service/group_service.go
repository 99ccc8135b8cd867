package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

// Group dialogs.
const (
	DialogCreateGroup = "create-group"
	FormSendMessage   = "send-message"
	defaultGroupID    = 1
)

type groupProvider interface {
	Groups(ctx context.Context) ([]models.Group, error)
	ChatMessages(ctx context.Context) ([]models.ChatMessage, error)
}

// GroupView is the typed payload of the groups page.
type GroupView struct {
	Groups   []models.Group       `json:"groups"`
	Selected *models.Group        `json:"selected,omitempty"`
	Messages []models.ChatMessage `json:"messages"`
}

// GroupService builds the groups and chat page.
type GroupService struct {
	provider groupProvider
	dialogs  dialogs
	logger   *zap.Logger
}

// NewGroupService constructs the service.
func NewGroupService(provider groupProvider, forms *FormValidator, notifier notifier, metrics *MetricsService, logger *zap.Logger) *GroupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroupService{provider: provider, dialogs: dialogs{forms: forms, notifier: notifier, metrics: metrics}, logger: logger}
}

// Page renders the group list, the selected conversation and the totals.
// Group 1 is selected unless the query names another; an unknown id selects
// nothing.
func (s *GroupService) Page(ctx context.Context, q dto.PageQuery) (*dto.PageView, error) {
	groups, err := s.provider.Groups(ctx)
	if err != nil {
		s.logger.Error("load groups", zap.Error(err))
		return nil, providerError(err, "groups")
	}
	messages, err := s.provider.ChatMessages(ctx)
	if err != nil {
		s.logger.Error("load chat messages", zap.Error(err))
		return nil, providerError(err, "chat messages")
	}

	selectedID := defaultGroupID
	if raw := strings.TrimSpace(q.Group); raw != "" {
		selectedID, err = strconv.Atoi(raw)
		if err != nil {
			selectedID = 0
		}
	}
	selected := findGroup(groups, selectedID)

	unread, members := 0, 0
	for _, g := range groups {
		unread += g.Unread
		members += g.Members
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	list := make([]dto.Card, 0, len(groups))
	for _, g := range groups {
		if search != "" && !strings.Contains(strings.ToLower(g.Name), search) && !strings.Contains(strings.ToLower(g.Description), search) {
			continue
		}
		list = append(list, groupCard(g, selected != nil && selected.ID == g.ID, search))
	}

	return &dto.PageView{
		Key:         models.PageGroups,
		Path:        "/groups",
		Title:       "Groups & Chat",
		Description: "Connect with classmates and join interest-based groups",
		Actions:     []dto.Action{openDialogAction("/groups", DialogCreateGroup, "Create Group", "plus", "")},
		Sections: []dto.Section{
			{Key: "groups", Title: "My Groups", Icon: "users", Cards: list, Empty: "No groups match your search"},
			chatSection(selected, messages),
		},
		Stats: []dto.Stat{
			{Label: "Total Groups", Value: strconv.Itoa(len(groups)), Icon: "users", Tone: models.TonePrimary},
			{Label: "Unread Messages", Value: strconv.Itoa(unread), Icon: "message-square", Tone: models.ToneAccent},
			{Label: "Total Members", Value: strconv.Itoa(members), Icon: "users", Tone: models.ToneSuccess},
		},
		Dialogs: []dto.Dialog{{
			Key:         DialogCreateGroup,
			Title:       "Create New Group",
			Description: "Create a group to connect with your classmates",
			Action:      "/groups/new",
			Submit:      "Create Group",
			Fields: []dto.FormField{
				{Name: "name", Label: "Group Name", Type: "text", Required: true, Placeholder: "e.g., Study Group"},
				{Name: "description", Label: "Description", Type: "textarea", Placeholder: "Brief description of the group..."},
			},
		}},
		Data: GroupView{Groups: groups, Selected: selected, Messages: messages},
	}, nil
}

// CreateGroup validates the dialog. Nothing is stored.
func (s *GroupService) CreateGroup(ctx context.Context, sessionID string, req dto.GroupRequest) *dto.SubmissionResult {
	values := req.Values()
	if msg := s.dialogs.forms.Check(req); msg != "" {
		return s.dialogs.reject(ctx, sessionID, DialogCreateGroup, msg, values)
	}
	return s.dialogs.accept(ctx, sessionID, DialogCreateGroup, "Group created successfully!", values)
}

// SendMessage acknowledges a chat line. A blank message is ignored without a
// toast and the history never changes.
func (s *GroupService) SendMessage(ctx context.Context, sessionID string, req dto.ChatMessageRequest) (*dto.SubmissionResult, error) {
	values := req.Values()
	if strings.TrimSpace(req.Message) == "" {
		return &dto.SubmissionResult{Dialog: FormSendMessage, Form: values}, nil
	}
	id := defaultGroupID
	if raw := strings.TrimSpace(req.GroupID); raw != "" {
		var err error
		if id, err = parseID(raw, "group"); err != nil {
			return nil, err
		}
	}
	groups, err := s.provider.Groups(ctx)
	if err != nil {
		s.logger.Error("load groups", zap.Error(err))
		return nil, providerError(err, "groups")
	}
	if findGroup(groups, id) == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "group not found")
	}
	result := s.dialogs.accept(ctx, sessionID, FormSendMessage, "Message sent!", values)
	result.Form["group_id"] = req.GroupID
	return result, nil
}

func findGroup(groups []models.Group, id int) *models.Group {
	for i := range groups {
		if groups[i].ID == id {
			g := groups[i]
			return &g
		}
	}
	return nil
}

func groupCard(g models.Group, selected bool, search string) dto.Card {
	href := "/groups?group=" + strconv.Itoa(g.ID)
	if search != "" {
		href += "&q=" + url.QueryEscape(search)
	}
	card := dto.Card{
		ID:       strconv.Itoa(g.ID),
		Title:    g.Name,
		Subtitle: g.LastMessageTime,
		Body:     g.LastMessage,
		Avatar:   g.Monogram(),
		Fields:   []dto.Field{{Label: "Members", Value: strconv.Itoa(g.Members) + " members", Icon: "users"}},
		Actions:  []dto.Action{{Key: "select", Label: "Open", Method: "GET", Href: href}},
	}
	if g.Unread > 0 {
		card.Badge = &models.Badge{Label: strconv.Itoa(g.Unread), Tone: models.TonePrimary}
	}
	if selected {
		card.Variant = "selected"
	}
	return card
}

func chatSection(selected *models.Group, messages []models.ChatMessage) dto.Section {
	if selected == nil {
		return dto.Section{Key: "chat", Title: "Chat", Icon: "message-square", Empty: "Select a group to start chatting"}
	}
	lines := make([]dto.Card, 0, len(messages))
	for _, m := range messages {
		line := dto.Card{ID: strconv.Itoa(m.ID), Title: m.Sender, Body: m.Text, Subtitle: m.Time}
		if m.IsOwn {
			line.Variant = "own"
		}
		lines = append(lines, line)
	}
	return dto.Section{
		Key:    "chat",
		Title:  selected.Name,
		Icon:   "message-square",
		Fields: []dto.Field{{Label: "Members", Value: strconv.Itoa(selected.Members) + " members"}},
		Cards:  lines,
		Form: &dto.Dialog{
			Key:    FormSendMessage,
			Action: "/groups/messages",
			Submit: "Send",
			Open:   true,
			Fields: []dto.FormField{
				{Name: "group_id", Type: "hidden", Value: strconv.Itoa(selected.ID)},
				{Name: "message", Type: "text", Placeholder: "Type a message..."},
			},
		},
	}
}
