package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/service"
	"github.com/noah-isme/campushub/pkg/middleware/session"
	"github.com/noah-isme/campushub/pkg/response"
)

type eventActor interface {
	Act(ctx context.Context, sessionID, rawID, action string) (*dto.ActionResult, error)
}

type connectActor interface {
	Act(ctx context.Context, sessionID, kind, rawID, action string) (*dto.ActionResult, error)
}

// ActionHandler exposes the one-click card buttons.
type ActionHandler struct {
	events  eventActor
	connect connectActor
}

// NewActionHandler constructs the handler.
func NewActionHandler(events eventActor, connect connectActor) *ActionHandler {
	return &ActionHandler{events: events, connect: connect}
}

// LikeEvent godoc
// @Summary Like an event
// @Tags Actions
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /events/{id}/like [post]
func (h *ActionHandler) LikeEvent(c *gin.Context) {
	h.eventAction(c, service.EventActionLike)
}

// ShareEvent godoc
// @Summary Share an event
// @Tags Actions
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /events/{id}/share [post]
func (h *ActionHandler) ShareEvent(c *gin.Context) {
	h.eventAction(c, service.EventActionShare)
}

// Connect godoc
// @Summary Send a connection request
// @Tags Actions
// @Produce json
// @Param kind path string true "Directory (students, teachers, alumni)"
// @Param id path int true "Person ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /connect/{kind}/{id}/connect [post]
func (h *ActionHandler) Connect(c *gin.Context) {
	h.connectAction(c, service.ConnectActionConnect)
}

// Message godoc
// @Summary Open a chat with a person
// @Tags Actions
// @Produce json
// @Param kind path string true "Directory (students, teachers, alumni)"
// @Param id path int true "Person ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /connect/{kind}/{id}/message [post]
func (h *ActionHandler) Message(c *gin.Context) {
	h.connectAction(c, service.ConnectActionMessage)
}

func (h *ActionHandler) eventAction(c *gin.Context, action string) {
	result, err := h.events.Act(c.Request.Context(), session.Value(c), c.Param("id"), action)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *ActionHandler) connectAction(c *gin.Context, action string) {
	result, err := h.connect.Act(c.Request.Context(), session.Value(c), c.Param("kind"), c.Param("id"), action)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
