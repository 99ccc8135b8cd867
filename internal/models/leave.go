package models

// LeaveApplication is a leave request.
type LeaveApplication struct {
	ID         int    `json:"id"`
	Type       string `json:"type"`
	FromDate   string `json:"fromDate"`
	ToDate     string `json:"toDate"`
	Reason     string `json:"reason"`
	Status     Status `json:"status"`
	AppliedOn  string `json:"appliedOn"`
	ApprovedBy string `json:"approvedBy,omitempty"`
}

// OnDutyApplication is a request to attend an external event on duty.
type OnDutyApplication struct {
	ID        int    `json:"id"`
	Event     string `json:"event"`
	Venue     string `json:"venue"`
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
	Status    Status `json:"status"`
	AppliedOn string `json:"appliedOn"`
}

// HallTicket is an examination admit card.
type HallTicket struct {
	ID           int      `json:"id"`
	Exam         string   `json:"exam"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Venue        string   `json:"venue"`
	SeatNo       string   `json:"seatNo"`
	Instructions []string `json:"instructions"`
}

// LeaveTypes are the selectable leave types.
var LeaveTypes = []Option{
	{Value: "medical", Label: "Medical Leave"},
	{Value: "personal", Label: "Personal Leave"},
	{Value: "emergency", Label: "Emergency Leave"},
	{Value: "other", Label: "Other"},
}
