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

type assignmentForms interface {
	Submit(ctx context.Context, sessionID string, req dto.AssignmentSubmissionRequest) (*dto.SubmissionResult, error)
}

type complaintForms interface {
	Submit(ctx context.Context, sessionID string, req dto.ComplaintRequest) *dto.SubmissionResult
}

type groupForms interface {
	CreateGroup(ctx context.Context, sessionID string, req dto.GroupRequest) *dto.SubmissionResult
	SendMessage(ctx context.Context, sessionID string, req dto.ChatMessageRequest) (*dto.SubmissionResult, error)
}

type hostelForms interface {
	ApplyGatepass(ctx context.Context, sessionID string, req dto.GatepassRequest) *dto.SubmissionResult
	SubscribeGym(ctx context.Context, sessionID string, req dto.GymSubscriptionRequest) *dto.SubmissionResult
}

type leaveForms interface {
	ApplyLeave(ctx context.Context, sessionID string, req dto.LeaveRequest) *dto.SubmissionResult
	ApplyOnDuty(ctx context.Context, sessionID string, req dto.OnDutyRequest) *dto.SubmissionResult
}

type wifiForms interface {
	Request(ctx context.Context, sessionID string, req dto.WiFiAccessRequest) *dto.SubmissionResult
}

// FormServices groups the page services that accept dialog submissions.
type FormServices struct {
	Assignments assignmentForms
	Complaints  complaintForms
	Groups      groupForms
	Hostel      hostelForms
	Leave       leaveForms
	WiFi        wifiForms
}

// FormHandler accepts dialog submissions as JSON or form posts. Rejected
// submissions are not HTTP errors: they answer 200 with the dialog still open.
type FormHandler struct {
	forms FormServices
}

// NewFormHandler constructs the handler.
func NewFormHandler(forms FormServices) *FormHandler {
	return &FormHandler{forms: forms}
}

// SubmitAssignment godoc
// @Summary Submit an assignment
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.AssignmentSubmissionRequest true "Submission"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /assignments/submissions [post]
func (h *FormHandler) SubmitAssignment(c *gin.Context) {
	var req dto.AssignmentSubmissionRequest
	if !bindPayload(c, &req) {
		return
	}
	result, err := h.forms.Assignments.Submit(c.Request.Context(), session.Value(c), req)
	respondSubmission(c, result, err)
}

// RaiseComplaint godoc
// @Summary Raise a complaint
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.ComplaintRequest true "Complaint"
// @Success 200 {object} response.Envelope
// @Router /complaints [post]
func (h *FormHandler) RaiseComplaint(c *gin.Context) {
	var req dto.ComplaintRequest
	if !bindPayload(c, &req) {
		return
	}
	respondSubmission(c, h.forms.Complaints.Submit(c.Request.Context(), session.Value(c), req), nil)
}

// CreateGroup godoc
// @Summary Create a study group
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.GroupRequest true "Group"
// @Success 200 {object} response.Envelope
// @Router /groups [post]
func (h *FormHandler) CreateGroup(c *gin.Context) {
	var req dto.GroupRequest
	if !bindPayload(c, &req) {
		return
	}
	respondSubmission(c, h.forms.Groups.CreateGroup(c.Request.Context(), session.Value(c), req), nil)
}

// SendMessage godoc
// @Summary Send a chat message to a group
// @Description A blank message is ignored without a notification.
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.ChatMessageRequest true "Message"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /groups/messages [post]
func (h *FormHandler) SendMessage(c *gin.Context) {
	var req dto.ChatMessageRequest
	if !bindPayload(c, &req) {
		return
	}
	result, err := h.forms.Groups.SendMessage(c.Request.Context(), session.Value(c), req)
	respondSubmission(c, result, err)
}

// ApplyGatepass godoc
// @Summary Apply for a hostel gatepass
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.GatepassRequest true "Gatepass"
// @Success 200 {object} response.Envelope
// @Router /hostel/gatepasses [post]
func (h *FormHandler) ApplyGatepass(c *gin.Context) {
	var req dto.GatepassRequest
	if !bindPayload(c, &req) {
		return
	}
	respondSubmission(c, h.forms.Hostel.ApplyGatepass(c.Request.Context(), session.Value(c), req), nil)
}

// SubscribeGym godoc
// @Summary Subscribe to the gym
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.GymSubscriptionRequest true "Plan"
// @Success 200 {object} response.Envelope
// @Router /hostel/gym [post]
func (h *FormHandler) SubscribeGym(c *gin.Context) {
	var req dto.GymSubscriptionRequest
	if !bindPayload(c, &req) {
		return
	}
	respondSubmission(c, h.forms.Hostel.SubscribeGym(c.Request.Context(), session.Value(c), req), nil)
}

// ApplyLeave godoc
// @Summary Apply for leave
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.LeaveRequest true "Leave"
// @Success 200 {object} response.Envelope
// @Router /leave/applications [post]
func (h *FormHandler) ApplyLeave(c *gin.Context) {
	var req dto.LeaveRequest
	if !bindPayload(c, &req) {
		return
	}
	respondSubmission(c, h.forms.Leave.ApplyLeave(c.Request.Context(), session.Value(c), req), nil)
}

// ApplyOnDuty godoc
// @Summary Apply for on-duty
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.OnDutyRequest true "On-duty"
// @Success 200 {object} response.Envelope
// @Router /leave/on-duty [post]
func (h *FormHandler) ApplyOnDuty(c *gin.Context) {
	var req dto.OnDutyRequest
	if !bindPayload(c, &req) {
		return
	}
	respondSubmission(c, h.forms.Leave.ApplyOnDuty(c.Request.Context(), session.Value(c), req), nil)
}

// RequestWiFi godoc
// @Summary Request Wi-Fi access for a device
// @Tags Forms
// @Accept json
// @Produce json
// @Param payload body dto.WiFiAccessRequest true "Device"
// @Success 200 {object} response.Envelope
// @Router /wifi/requests [post]
func (h *FormHandler) RequestWiFi(c *gin.Context) {
	var req dto.WiFiAccessRequest
	if !bindPayload(c, &req) {
		return
	}
	respondSubmission(c, h.forms.WiFi.Request(c.Request.Context(), session.Value(c), req), nil)
}

// bindPayload decodes JSON bodies and form posts alike. Validation is left to
// the services so failures surface as toasts.
func bindPayload(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBind(dst); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "malformed request body"))
		return false
	}
	return true
}

func respondSubmission(c *gin.Context, result *dto.SubmissionResult, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
