package service

import (
	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/models"
)

// DataProvider is everything the routed pages read. Both the static fixtures
// and the catalog repository satisfy it.
type DataProvider interface {
	dashboardProvider
	assignmentProvider
	attendanceProvider
	groupProvider
	peopleProvider
	leaveProvider
	marksProvider
	eventProvider
	hostelProvider
	complaintProvider
	wifiProvider
}

// Pages holds one service per routed page.
type Pages struct {
	Dashboard   *DashboardService
	Assignments *AssignmentService
	Attendance  *AttendanceService
	Groups      *GroupService
	Connect     *ConnectService
	Leave       *LeaveService
	Marks       *MarksService
	Events      *EventService
	Hostel      *HostelService
	Complaints  *ComplaintService
	WiFi        *WiFiService
}

// NewPages builds every page service over the same provider.
func NewPages(provider DataProvider, forms *FormValidator, notifier notifier, metrics *MetricsService, logger *zap.Logger) *Pages {
	return &Pages{
		Dashboard:   NewDashboardService(provider, logger),
		Assignments: NewAssignmentService(provider, forms, notifier, metrics, logger),
		Attendance:  NewAttendanceService(provider, logger),
		Groups:      NewGroupService(provider, forms, notifier, metrics, logger),
		Connect:     NewConnectService(provider, notifier, logger),
		Leave:       NewLeaveService(provider, forms, notifier, metrics, logger),
		Marks:       NewMarksService(provider, logger),
		Events:      NewEventService(provider, notifier, logger),
		Hostel:      NewHostelService(provider, forms, notifier, metrics, logger),
		Complaints:  NewComplaintService(provider, forms, notifier, metrics, logger),
		WiFi:        NewWiFiService(provider, forms, notifier, metrics, logger),
	}
}

// Register attaches every page builder to the portal.
func (p *Pages) Register(portal *PortalService) {
	portal.Register(models.PageDashboard, p.Dashboard.Page)
	portal.Register(models.PageAssignments, p.Assignments.Page)
	portal.Register(models.PageAttendance, p.Attendance.Page)
	portal.Register(models.PageGroups, p.Groups.Page)
	portal.Register(models.PageConnect, p.Connect.Page)
	portal.Register(models.PageLeave, p.Leave.Page)
	portal.Register(models.PageMarks, p.Marks.Page)
	portal.Register(models.PageEvents, p.Events.Page)
	portal.Register(models.PageHostel, p.Hostel.Page)
	portal.Register(models.PageComplaints, p.Complaints.Page)
	portal.Register(models.PageWiFi, p.WiFi.Page)
}
