package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/service"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
	"github.com/noah-isme/campushub/pkg/middleware/session"
	"github.com/noah-isme/campushub/pkg/response"
)

type webPortal interface {
	Render(ctx context.Context, sessionID string, q dto.PageQuery) (*dto.PortalView, error)
	RenderWithForm(ctx context.Context, sessionID string, q dto.PageQuery, result *dto.SubmissionResult) (*dto.PortalView, error)
}

// webPage is the root value handed to the layout template.
type webPage struct {
	View      *dto.PortalView
	ActiveTab *dto.Tab
	Return    string
}

// WebHandler serves the server-rendered portal. Accepted forms and actions
// redirect back to their page so a reload never resubmits.
type WebHandler struct {
	portal    webPortal
	shell     shellService
	forms     FormServices
	events    eventActor
	connect   connectActor
	exports   exportService
	apiPrefix string
	logger    *zap.Logger
}

// NewWebHandler constructs the handler.
func NewWebHandler(portal webPortal, shell shellService, forms FormServices, events eventActor, connect connectActor, exports exportService, apiPrefix string, logger *zap.Logger) *WebHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebHandler{
		portal:    portal,
		shell:     shell,
		forms:     forms,
		events:    events,
		connect:   connect,
		exports:   exports,
		apiPrefix: apiPrefix,
		logger:    logger,
	}
}

// Page renders the routed page for the request path.
func (h *WebHandler) Page(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.fail(c, appErrors.Clone(appErrors.ErrValidation, "invalid page query"))
		return
	}
	q.Path = c.Request.URL.Path
	view, err := h.portal.Render(c.Request.Context(), session.Value(c), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, view)
}

// NotFound renders the not-found page for unrouted paths. Unknown API paths
// answer with the JSON error envelope instead.
func (h *WebHandler) NotFound(c *gin.Context) {
	if h.apiPrefix != "" && strings.HasPrefix(c.Request.URL.Path, h.apiPrefix) {
		response.Error(c, appErrors.ErrRouteUnknown)
		return
	}
	h.Page(c)
}

// ToggleSidebar flips the sidebar and returns to the page it was used on.
func (h *WebHandler) ToggleSidebar(c *gin.Context) {
	target := safeReturn(c.PostForm("return"))
	if _, err := h.shell.Toggle(c.Request.Context(), session.Value(c), target); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, target)
}

// CloseSidebar handles a tap on the backdrop.
func (h *WebHandler) CloseSidebar(c *gin.Context) {
	target := safeReturn(c.PostForm("return"))
	if _, err := h.shell.Close(c.Request.Context(), session.Value(c), target); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, target)
}

// Navigate follows a sidebar entry and closes the sidebar.
func (h *WebHandler) Navigate(c *gin.Context) {
	target := safeReturn(c.PostForm("path"))
	view, err := h.shell.Navigate(c.Request.Context(), session.Value(c), target)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, view.Path)
}

// SubmitAssignment handles the upload dialog. The browser sends the file
// itself; only its name is kept.
func (h *WebHandler) SubmitAssignment(c *gin.Context) {
	var req dto.AssignmentSubmissionRequest
	if !h.bind(c, &req) {
		return
	}
	if file, err := c.FormFile("file_name"); err == nil && file != nil {
		req.FileName = file.Filename
	}
	result, err := h.forms.Assignments.Submit(c.Request.Context(), session.Value(c), req)
	h.finishForm(c, dto.PageQuery{Path: "/assignments"}, result, err)
}

// RaiseComplaint handles the complaint dialog.
func (h *WebHandler) RaiseComplaint(c *gin.Context) {
	var req dto.ComplaintRequest
	if !h.bind(c, &req) {
		return
	}
	result := h.forms.Complaints.Submit(c.Request.Context(), session.Value(c), req)
	h.finishForm(c, dto.PageQuery{Path: "/complaints"}, result, nil)
}

// CreateGroup handles the new group dialog.
func (h *WebHandler) CreateGroup(c *gin.Context) {
	var req dto.GroupRequest
	if !h.bind(c, &req) {
		return
	}
	result := h.forms.Groups.CreateGroup(c.Request.Context(), session.Value(c), req)
	h.finishForm(c, dto.PageQuery{Path: "/groups"}, result, nil)
}

// SendMessage posts a chat line and returns to the same conversation.
func (h *WebHandler) SendMessage(c *gin.Context) {
	var req dto.ChatMessageRequest
	if !h.bind(c, &req) {
		return
	}
	result, err := h.forms.Groups.SendMessage(c.Request.Context(), session.Value(c), req)
	h.finishForm(c, dto.PageQuery{Path: "/groups", Group: strings.TrimSpace(req.GroupID)}, result, err)
}

// ApplyGatepass handles the gatepass dialog.
func (h *WebHandler) ApplyGatepass(c *gin.Context) {
	var req dto.GatepassRequest
	if !h.bind(c, &req) {
		return
	}
	result := h.forms.Hostel.ApplyGatepass(c.Request.Context(), session.Value(c), req)
	h.finishForm(c, dto.PageQuery{Path: "/hostel"}, result, nil)
}

// SubscribeGym handles the gym plan dialog.
func (h *WebHandler) SubscribeGym(c *gin.Context) {
	var req dto.GymSubscriptionRequest
	if !h.bind(c, &req) {
		return
	}
	result := h.forms.Hostel.SubscribeGym(c.Request.Context(), session.Value(c), req)
	h.finishForm(c, dto.PageQuery{Path: "/hostel"}, result, nil)
}

// ApplyLeave handles the leave dialog.
func (h *WebHandler) ApplyLeave(c *gin.Context) {
	var req dto.LeaveRequest
	if !h.bind(c, &req) {
		return
	}
	result := h.forms.Leave.ApplyLeave(c.Request.Context(), session.Value(c), req)
	h.finishForm(c, dto.PageQuery{Path: "/leave"}, result, nil)
}

// ApplyOnDuty handles the on-duty dialog.
func (h *WebHandler) ApplyOnDuty(c *gin.Context) {
	var req dto.OnDutyRequest
	if !h.bind(c, &req) {
		return
	}
	result := h.forms.Leave.ApplyOnDuty(c.Request.Context(), session.Value(c), req)
	h.finishForm(c, dto.PageQuery{Path: "/leave"}, result, nil)
}

// RequestWiFi handles the Wi-Fi access dialog.
func (h *WebHandler) RequestWiFi(c *gin.Context) {
	var req dto.WiFiAccessRequest
	if !h.bind(c, &req) {
		return
	}
	result := h.forms.WiFi.Request(c.Request.Context(), session.Value(c), req)
	h.finishForm(c, dto.PageQuery{Path: "/wifi"}, result, nil)
}

// LikeEvent likes an event card.
func (h *WebHandler) LikeEvent(c *gin.Context) {
	h.eventAction(c, service.EventActionLike)
}

// ShareEvent shares an event card.
func (h *WebHandler) ShareEvent(c *gin.Context) {
	h.eventAction(c, service.EventActionShare)
}

// Connect sends a connection request from a directory card.
func (h *WebHandler) Connect(c *gin.Context) {
	h.connectAction(c, service.ConnectActionConnect)
}

// Message opens a chat from a directory card.
func (h *WebHandler) Message(c *gin.Context) {
	h.connectAction(c, service.ConnectActionMessage)
}

// MarksReport generates a report and sends the browser to the download.
func (h *WebHandler) MarksReport(c *gin.Context) {
	var req dto.ReportRequest
	if !h.bind(c, &req) {
		return
	}
	link, err := h.exports.MarksReport(c.Request.Context(), session.Value(c), req)
	h.download(c, link, err)
}

// HallTicket downloads a hall ticket.
func (h *WebHandler) HallTicket(c *gin.Context) {
	link, err := h.exports.HallTicket(c.Request.Context(), session.Value(c), c.Param("id"))
	h.download(c, link, err)
}

// WiFiCertificate downloads the certificate of an approved request.
func (h *WebHandler) WiFiCertificate(c *gin.Context) {
	link, err := h.exports.WiFiCertificate(c.Request.Context(), session.Value(c), c.Param("id"))
	h.download(c, link, err)
}

func (h *WebHandler) eventAction(c *gin.Context, action string) {
	if _, err := h.events.Act(c.Request.Context(), session.Value(c), c.Param("id"), action); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/events")
}

func (h *WebHandler) connectAction(c *gin.Context, action string) {
	kind := c.Param("kind")
	if _, err := h.connect.Act(c.Request.Context(), session.Value(c), kind, c.Param("id"), action); err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, pageURL(dto.PageQuery{Path: "/connect", Tab: kind}))
}

func (h *WebHandler) download(c *gin.Context, link *dto.ExportLink, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, link.URL)
}

// finishForm redirects after an accepted or ignored submission. A rejected one
// re-renders the page with its dialog open and the typed values kept.
func (h *WebHandler) finishForm(c *gin.Context, q dto.PageQuery, result *dto.SubmissionResult, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	if !result.DialogOpen {
		c.Redirect(http.StatusSeeOther, pageURL(q))
		return
	}
	view, err := h.portal.RenderWithForm(c.Request.Context(), session.Value(c), q, result)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, view)
}

func (h *WebHandler) bind(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBind(dst); err != nil {
		h.fail(c, appErrors.Clone(appErrors.ErrValidation, "malformed form submission"))
		return false
	}
	return true
}

func (h *WebHandler) render(c *gin.Context, view *dto.PortalView) {
	page := webPage{View: view, Return: c.Request.URL.RequestURI()}
	if tab, ok := view.Page.FindTab(view.Page.ActiveTab); ok {
		page.ActiveTab = tab
	}
	if c.Request.Method != http.MethodGet {
		page.Return = view.Page.Path
	}
	c.Header("Cache-Control", "no-store")
	c.HTML(view.Status, "layout", page)
}

func (h *WebHandler) fail(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		h.logger.Error("render portal", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.HTML(appErr.Status, "error", gin.H{
		"Brand":   service.Brand,
		"Status":  appErr.Status,
		"Message": appErr.Message,
		"Return":  "/",
	})
	c.Abort()
}

// pageURL rebuilds the link to a page with the query state worth keeping.
func pageURL(q dto.PageQuery) string {
	v := url.Values{}
	if q.Tab != "" {
		v.Set("tab", q.Tab)
	}
	if q.Group != "" {
		v.Set("group", q.Group)
	}
	if len(v) == 0 {
		return q.Path
	}
	return q.Path + "?" + v.Encode()
}

// safeReturn keeps redirects on this site.
func safeReturn(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	// Browsers strip control characters, turning "/\t/host" protocol-relative.
	if strings.IndexFunc(raw, unicode.IsControl) >= 0 {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return raw
}
