package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campushub/internal/dto"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
	"github.com/noah-isme/campushub/pkg/middleware/session"
	"github.com/noah-isme/campushub/pkg/response"
)

type shellService interface {
	Shell(ctx context.Context, sessionID, path string) (*dto.ShellView, error)
	Toggle(ctx context.Context, sessionID, path string) (*dto.ShellView, error)
	Close(ctx context.Context, sessionID, path string) (*dto.ShellView, error)
	Navigate(ctx context.Context, sessionID, path string) (*dto.ShellView, error)
}

// ShellHandler exposes the sidebar state machine.
type ShellHandler struct {
	shell shellService
}

// NewShellHandler constructs the handler.
func NewShellHandler(shell shellService) *ShellHandler {
	return &ShellHandler{shell: shell}
}

// Get godoc
// @Summary Shell chrome for a path
// @Tags Shell
// @Produce json
// @Param path query string false "Current path"
// @Success 200 {object} response.Envelope
// @Router /shell [get]
func (h *ShellHandler) Get(c *gin.Context) {
	view, err := h.shell.Shell(c.Request.Context(), session.Value(c), c.DefaultQuery("path", "/"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Toggle godoc
// @Summary Toggle the sidebar
// @Tags Shell
// @Produce json
// @Param path query string false "Current path"
// @Success 200 {object} response.Envelope
// @Router /shell/sidebar/toggle [post]
func (h *ShellHandler) Toggle(c *gin.Context) {
	view, err := h.shell.Toggle(c.Request.Context(), session.Value(c), c.DefaultQuery("path", "/"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Close godoc
// @Summary Close the sidebar (backdrop tap)
// @Tags Shell
// @Produce json
// @Param path query string false "Current path"
// @Success 200 {object} response.Envelope
// @Router /shell/sidebar/close [post]
func (h *ShellHandler) Close(c *gin.Context) {
	view, err := h.shell.Close(c.Request.Context(), session.Value(c), c.DefaultQuery("path", "/"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Navigate godoc
// @Summary Select a sidebar entry
// @Tags Shell
// @Accept json
// @Produce json
// @Param payload body dto.NavigateRequest true "Target path"
// @Success 200 {object} response.Envelope
// @Router /shell/navigate [post]
func (h *ShellHandler) Navigate(c *gin.Context) {
	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid navigate payload"))
		return
	}
	view, err := h.shell.Navigate(c.Request.Context(), session.Value(c), req.Path)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}
