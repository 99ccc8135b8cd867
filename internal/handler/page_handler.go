package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/middleware"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
	"github.com/noah-isme/campushub/pkg/middleware/session"
	"github.com/noah-isme/campushub/pkg/response"
)

type portalRenderer interface {
	Render(ctx context.Context, sessionID string, q dto.PageQuery) (*dto.PortalView, error)
}

// PageHandler serves composed page views as JSON.
type PageHandler struct {
	portal portalRenderer
}

// NewPageHandler constructs the handler.
func NewPageHandler(portal portalRenderer) *PageHandler {
	return &PageHandler{portal: portal}
}

// Get godoc
// @Summary Render a routed page
// @Description Unknown paths render the not-found page with status 404.
// @Tags Pages
// @Produce json
// @Param path query string true "Page path"
// @Param tab query string false "Active tab"
// @Param dialog query string false "Dialog to open"
// @Param item query string false "Record the dialog is opened for"
// @Param group query string false "Selected group id"
// @Param q query string false "Search text"
// @Param date query string false "Selected calendar date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /pages [get]
func (h *PageHandler) Get(c *gin.Context) {
	if h.portal == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid page query"))
		return
	}
	view, err := h.portal.Render(c.Request.Context(), session.Value(c), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, view.CacheHit)
	middleware.SetPage(c, string(view.Page.Key), view.Status)
	response.JSON(c, view.Status, view, middleware.ExtractMeta(c))
}
