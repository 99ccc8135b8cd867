package dto

import "github.com/noah-isme/campushub/internal/models"

// SubmissionResult reports the outcome of a dialog form.
type SubmissionResult struct {
	Dialog       string               `json:"dialog"`
	Accepted     bool                 `json:"accepted"`
	DialogOpen   bool                 `json:"dialogOpen"`
	Notification *models.Notification `json:"notification,omitempty"`
	Form         map[string]string    `json:"form"`
}

// ActionResult reports the outcome of a one-click page action.
type ActionResult struct {
	Action       string               `json:"action"`
	Notification *models.Notification `json:"notification,omitempty"`
}

// AssignmentSubmissionRequest is the "Submit Assignment" dialog.
type AssignmentSubmissionRequest struct {
	AssignmentID string `form:"assignment_id" json:"assignmentId" validate:"filled,numeric"`
	FileName     string `form:"file_name" json:"fileName" validate:"omitempty,assignment_file"`
	Notes        string `form:"notes" json:"notes"`
}

// Values echoes the submitted inputs.
func (r AssignmentSubmissionRequest) Values() map[string]string {
	return map[string]string{"assignment_id": r.AssignmentID, "file_name": r.FileName, "notes": r.Notes}
}

// ComplaintRequest is the "Raise Complaint" dialog.
type ComplaintRequest struct {
	Category    string `form:"category" json:"category" validate:"filled,oneof=hostel mess academic maintenance transport other"`
	Title       string `form:"title" json:"title" validate:"filled"`
	Description string `form:"description" json:"description" validate:"filled"`
}

// Values echoes the submitted inputs.
func (r ComplaintRequest) Values() map[string]string {
	return map[string]string{"category": r.Category, "title": r.Title, "description": r.Description}
}

// GroupRequest is the "Create Group" dialog.
type GroupRequest struct {
	Name        string `form:"name" json:"name" validate:"filled"`
	Description string `form:"description" json:"description"`
}

// Values echoes the submitted inputs.
func (r GroupRequest) Values() map[string]string {
	return map[string]string{"name": r.Name, "description": r.Description}
}

// ChatMessageRequest sends a line to the selected group.
type ChatMessageRequest struct {
	GroupID string `form:"group_id" json:"groupId"`
	Message string `form:"message" json:"message"`
}

// Values echoes the submitted inputs.
func (r ChatMessageRequest) Values() map[string]string {
	return map[string]string{"group_id": r.GroupID, "message": r.Message}
}

// GatepassRequest is the "Apply for Gatepass" dialog.
type GatepassRequest struct {
	FromDate string `form:"from_date" json:"fromDate" validate:"filled,datetime=2006-01-02"`
	ToDate   string `form:"to_date" json:"toDate" validate:"filled,datetime=2006-01-02"`
	Reason   string `form:"reason" json:"reason" validate:"filled"`
}

// Values echoes the submitted inputs.
func (r GatepassRequest) Values() map[string]string {
	return map[string]string{"from_date": r.FromDate, "to_date": r.ToDate, "reason": r.Reason}
}

// GymSubscriptionRequest is the "Subscribe to Gym" dialog.
type GymSubscriptionRequest struct {
	Plan string `form:"plan" json:"plan" validate:"omitempty,oneof=monthly quarterly yearly"`
}

// Values echoes the submitted inputs.
func (r GymSubscriptionRequest) Values() map[string]string {
	return map[string]string{"plan": r.Plan}
}

// LeaveRequest is the "Apply for Leave" dialog.
type LeaveRequest struct {
	Type     string `form:"type" json:"type" validate:"filled,oneof=medical personal emergency other"`
	FromDate string `form:"from_date" json:"fromDate" validate:"filled,datetime=2006-01-02"`
	ToDate   string `form:"to_date" json:"toDate" validate:"filled,datetime=2006-01-02"`
	Reason   string `form:"reason" json:"reason" validate:"filled"`
}

// Values echoes the submitted inputs.
func (r LeaveRequest) Values() map[string]string {
	return map[string]string{"type": r.Type, "from_date": r.FromDate, "to_date": r.ToDate, "reason": r.Reason}
}

// OnDutyRequest is the "Apply for On-Duty" dialog.
type OnDutyRequest struct {
	Event       string `form:"event" json:"event" validate:"filled"`
	Venue       string `form:"venue" json:"venue" validate:"filled"`
	FromDate    string `form:"from_date" json:"fromDate" validate:"filled,datetime=2006-01-02"`
	ToDate      string `form:"to_date" json:"toDate" validate:"filled,datetime=2006-01-02"`
	Description string `form:"description" json:"description" validate:"filled"`
}

// Values echoes the submitted inputs.
func (r OnDutyRequest) Values() map[string]string {
	return map[string]string{
		"event": r.Event, "venue": r.Venue, "from_date": r.FromDate, "to_date": r.ToDate, "description": r.Description,
	}
}

// WiFiAccessRequest is the "Request Wi-Fi Access" dialog.
type WiFiAccessRequest struct {
	DeviceName string `form:"device_name" json:"deviceName" validate:"filled"`
	MACAddress string `form:"mac_address" json:"macAddress" validate:"filled,mac"`
	DeviceType string `form:"device_type" json:"deviceType" validate:"filled"`
}

// Values echoes the submitted inputs.
func (r WiFiAccessRequest) Values() map[string]string {
	return map[string]string{"device_name": r.DeviceName, "mac_address": r.MACAddress, "device_type": r.DeviceType}
}
