package models

// PageKey identifies a routed page.
type PageKey string

const (
	PageDashboard   PageKey = "dashboard"
	PageAssignments PageKey = "assignments"
	PageAttendance  PageKey = "attendance"
	PageGroups      PageKey = "groups"
	PageConnect     PageKey = "connect"
	PageLeave       PageKey = "leave"
	PageMarks       PageKey = "marks"
	PageEvents      PageKey = "events"
	PageHostel      PageKey = "hostel"
	PageComplaints  PageKey = "complaints"
	PageWiFi        PageKey = "wifi"
	PageNotFound    PageKey = "not-found"
	PageComingSoon  PageKey = "coming-soon"
)

// Route binds a URL path to a page and its sidebar entry.
type Route struct {
	Path  string  `json:"path"`
	Page  PageKey `json:"page"`
	Title string  `json:"title"`
	Icon  string  `json:"icon"`
}

// NotFound reports whether the route is the catch-all.
func (r Route) NotFound() bool {
	return r.Page == PageNotFound
}

var routeTable = []Route{
	{Path: "/", Page: PageDashboard, Title: "Dashboard", Icon: "home"},
	{Path: "/assignments", Page: PageAssignments, Title: "Assignments", Icon: "book-open"},
	{Path: "/attendance", Page: PageAttendance, Title: "Attendance", Icon: "calendar"},
	{Path: "/groups", Page: PageGroups, Title: "Groups & Chat", Icon: "users"},
	{Path: "/connect", Page: PageConnect, Title: "Connect", Icon: "link"},
	{Path: "/leave", Page: PageLeave, Title: "Leave & On-Duty", Icon: "file-text"},
	{Path: "/marks", Page: PageMarks, Title: "Marks & Reports", Icon: "bar-chart"},
	{Path: "/events", Page: PageEvents, Title: "Events", Icon: "megaphone"},
	{Path: "/hostel", Page: PageHostel, Title: "Hostel", Icon: "home"},
	{Path: "/complaints", Page: PageComplaints, Title: "Complaints", Icon: "message-square"},
	{Path: "/wifi", Page: PageWiFi, Title: "Wi-Fi Request", Icon: "wifi"},
}

// RouteTable returns the routed pages in sidebar order.
func RouteTable() []Route {
	out := make([]Route, len(routeTable))
	copy(out, routeTable)
	return out
}

// Profile is the signed-in user shown in the header.
type Profile struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
}

// DefaultProfile is the fixture user every visitor sees.
var DefaultProfile = Profile{Name: "John Doe", Role: "Student", Initials: "JD"}
