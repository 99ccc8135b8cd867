package repository

import (
	"context"

	"github.com/noah-isme/campushub/internal/models"
)

// FixtureRepository serves the portal's static records. Every call builds
// fresh values so callers may mutate what they receive.
type FixtureRepository struct{}

// NewFixtureRepository constructs the static data provider.
func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{}
}

func intPtr(v int) *int { return &v }

// DashboardSummary returns the dashboard fixtures.
func (r *FixtureRepository) DashboardSummary(context.Context) (*models.DashboardSummary, error) {
	return &models.DashboardSummary{
		Greeting: "Welcome back, John!",
		Stats: []models.DashboardStat{
			{Title: "Pending Assignments", Value: "3", Icon: "book-open", Tone: models.ToneWarning},
			{Title: "Attendance", Value: "87%", Icon: "calendar", Tone: models.ToneSuccess},
			{Title: "Overall Grade", Value: "A", Icon: "trending-up", Tone: models.TonePrimary},
			{Title: "Upcoming Events", Value: "5", Icon: "clock", Tone: models.ToneAccent},
		},
		RecentAssignments: []models.AssignmentDigest{
			{Title: "Data Structures - Assignment 3", Subject: "Computer Science", Deadline: "2024-01-15", Status: models.StatusPending},
			{Title: "Calculus Problem Set", Subject: "Mathematics", Deadline: "2024-01-18", Status: models.StatusSubmitted},
			{Title: "Database Design Project", Subject: "Database Systems", Deadline: "2024-01-20", Status: models.StatusPending},
		},
		UpcomingEvents: []models.EventDigest{
			{Title: "Tech Fest 2024", Date: "Jan 25, 2024", Type: "Festival"},
			{Title: "Semester Exams", Date: "Feb 1-10, 2024", Type: "Academic"},
			{Title: "Guest Lecture: AI & ML", Date: "Jan 22, 2024", Type: "Workshop"},
		},
		Attendance: []models.SubjectPercentage{
			{Subject: "Data Structures", Percentage: 92},
			{Subject: "Database Systems", Percentage: 87},
			{Subject: "Operating Systems", Percentage: 78},
			{Subject: "Computer Networks", Percentage: 95},
		},
	}, nil
}

// Assignments returns the coursework list.
func (r *FixtureRepository) Assignments(context.Context) ([]models.Assignment, error) {
	return []models.Assignment{
		{
			ID: 1, Title: "Data Structures - Binary Trees Implementation", Subject: "Computer Science",
			Description: "Implement AVL tree with insertion, deletion, and balancing operations.",
			Deadline:    "2024-01-15", Points: 100, Status: models.StatusPending,
		},
		{
			ID: 2, Title: "Calculus - Integration Problem Set", Subject: "Mathematics",
			Description: "Solve problems 1-20 from Chapter 5 on integration techniques.",
			Deadline:    "2024-01-18", Points: 50, Status: models.StatusSubmitted, SubmittedOn: "2024-01-10",
		},
		{
			ID: 3, Title: "Database Design - ER Diagram", Subject: "Database Systems",
			Description: "Create an ER diagram for a library management system.",
			Deadline:    "2024-01-20", Points: 75, Status: models.StatusPending,
		},
		{
			ID: 4, Title: "Operating Systems - Process Scheduling", Subject: "Operating Systems",
			Description: "Compare FCFS, SJF, and Round Robin scheduling algorithms.",
			Deadline:    "2024-01-12", Points: 80, Status: models.StatusGraded, SubmittedOn: "2024-01-11", Grade: intPtr(72),
		},
	}, nil
}

// SubjectAttendance returns the per-subject attendance records.
func (r *FixtureRepository) SubjectAttendance(context.Context) ([]models.SubjectAttendance, error) {
	return []models.SubjectAttendance{
		{Name: "Data Structures", Present: 28, Total: 30, Percentage: 93},
		{Name: "Database Systems", Present: 26, Total: 30, Percentage: 87},
		{Name: "Operating Systems", Present: 23, Total: 30, Percentage: 77},
		{Name: "Computer Networks", Present: 29, Total: 30, Percentage: 97},
		{Name: "Software Engineering", Present: 25, Total: 28, Percentage: 89},
	}, nil
}

// RecentAttendance returns the latest attendance marks.
func (r *FixtureRepository) RecentAttendance(context.Context) ([]models.AttendanceEntry, error) {
	return []models.AttendanceEntry{
		{Date: "2024-01-10", Subject: "Data Structures", Status: models.StatusPresent},
		{Date: "2024-01-10", Subject: "Database Systems", Status: models.StatusPresent},
		{Date: "2024-01-09", Subject: "Operating Systems", Status: models.StatusAbsent},
		{Date: "2024-01-09", Subject: "Computer Networks", Status: models.StatusPresent},
		{Date: "2024-01-08", Subject: "Software Engineering", Status: models.StatusPresent},
	}, nil
}

// AttendanceTotals returns the term counters.
func (r *FixtureRepository) AttendanceTotals(context.Context) (*models.AttendanceTotals, error) {
	return &models.AttendanceTotals{TotalClasses: 148, Attended: 131}, nil
}

// Events returns the campus events.
func (r *FixtureRepository) Events(context.Context) ([]models.Event, error) {
	return []models.Event{
		{
			ID: 1, Title: "Tech Fest 2024",
			Description: "Annual technical festival featuring coding competitions, hackathons, and tech talks from industry experts.",
			Date:        "January 25-27, 2024", Location: "Main Campus Auditorium", Category: "Festival",
			Image: "/static/placeholder.svg", Attendees: 450, Likes: 128, Comments: 34,
		},
		{
			ID: 2, Title: "Guest Lecture: AI & Machine Learning",
			Description: "Join us for an insightful session on the latest trends in AI and ML by Dr. Sarah Johnson from MIT.",
			Date:        "January 22, 2024", Location: "Conference Hall A", Category: "Workshop",
			Image: "/static/placeholder.svg", Attendees: 150, Likes: 89, Comments: 12,
		},
		{
			ID: 3, Title: "Sports Day Championship",
			Description: "Inter-department sports competition including cricket, football, volleyball, and athletics.",
			Date:        "February 5, 2024", Location: "Sports Complex", Category: "Sports",
			Image: "/static/placeholder.svg", Attendees: 320, Likes: 156, Comments: 45,
		},
		{
			ID: 4, Title: "Cultural Night",
			Description: "Celebrate diversity with performances from various cultural groups, including music, dance, and drama.",
			Date:        "January 30, 2024", Location: "Open Air Theatre", Category: "Cultural",
			Image: "/static/placeholder.svg", Attendees: 280, Likes: 203, Comments: 67,
		},
	}, nil
}

// Announcements returns the pinned notices.
func (r *FixtureRepository) Announcements(context.Context) ([]models.Announcement, error) {
	return []models.Announcement{
		{Title: "Semester Examination Schedule Released", Date: "January 10, 2024", Type: "Academic"},
		{Title: "New Library Timing: 8 AM - 10 PM", Date: "January 8, 2024", Type: "Facility"},
		{Title: "Scholarship Applications Open", Date: "January 5, 2024", Type: "Financial"},
	}, nil
}

// Complaints returns the student's complaints.
func (r *FixtureRepository) Complaints(context.Context) ([]models.Complaint, error) {
	return []models.Complaint{
		{
			ID: 1, Title: "Broken AC in Room 204", Category: "Hostel",
			Description: "The air conditioning unit in room 204 has been making loud noises and not cooling properly.",
			Status:      models.StatusInProgress, Date: "2024-01-10", UpdatedAt: "2024-01-12",
		},
		{
			ID: 2, Title: "Food Quality Issue", Category: "Mess",
			Description: "The food served during lunch on Jan 8 was undercooked and cold.",
			Status:      models.StatusResolved, Date: "2024-01-08", UpdatedAt: "2024-01-09",
			Resolution: "Quality checks have been improved. New chef has been assigned.",
		},
		{
			ID: 3, Title: "Library WiFi Not Working", Category: "Academic",
			Description: "Unable to connect to WiFi in the library for the past 2 days.",
			Status:      models.StatusPending, Date: "2024-01-11", UpdatedAt: "2024-01-11",
		},
		{
			ID: 4, Title: "Washroom Maintenance", Category: "Hostel",
			Description: "Water leakage in 2nd floor washroom near the common room.",
			Status:      models.StatusInProgress, Date: "2024-01-09", UpdatedAt: "2024-01-11",
		},
	}, nil
}

// Groups returns the chat groups.
func (r *FixtureRepository) Groups(context.Context) ([]models.Group, error) {
	return []models.Group{
		{ID: 1, Name: "CS Department - 4th Year", Description: "Main group for all CS 4th year students", Members: 45, Unread: 3,
			LastMessage: "Don't forget about the project submission tomorrow!", LastMessageTime: "10:30 AM"},
		{ID: 2, Name: "Tech Club", Description: "Discussions about latest tech trends", Members: 120, Unread: 0,
			LastMessage: "Check out this amazing AI tool!", LastMessageTime: "Yesterday"},
		{ID: 3, Name: "Hackathon Team", Description: "Team for upcoming hackathon", Members: 4, Unread: 8,
			LastMessage: "We need to finalize the tech stack", LastMessageTime: "2:15 PM"},
		{ID: 4, Name: "Study Group - DS", Description: "Data Structures study group", Members: 8, Unread: 0,
			LastMessage: "Anyone free for doubt session?", LastMessageTime: "Jan 10"},
	}, nil
}

// ChatMessages returns the conversation shown for the selected group.
func (r *FixtureRepository) ChatMessages(context.Context) ([]models.ChatMessage, error) {
	return []models.ChatMessage{
		{ID: 1, Sender: "Alice Johnson", Text: "Hey everyone! Did anyone complete the assignment?", Time: "9:30 AM"},
		{ID: 2, Sender: "You", Text: "Yes, I just submitted it. It was quite challenging!", Time: "9:32 AM", IsOwn: true},
		{ID: 3, Sender: "Bob Smith", Text: "Can someone share the resources for the next topic?", Time: "9:45 AM"},
		{ID: 4, Sender: "Carol Davis", Text: "I'll upload them to the drive shortly", Time: "10:15 AM"},
		{ID: 5, Sender: "You", Text: "Thanks Carol! That would be really helpful.", Time: "10:16 AM", IsOwn: true},
	}, nil
}

// People returns the directory entries of one kind.
func (r *FixtureRepository) People(_ context.Context, kind models.PersonKind) ([]models.Person, error) {
	switch kind {
	case models.PersonStudent:
		return []models.Person{
			{ID: 1, Kind: kind, Name: "Alice Johnson", Role: "Student", Department: "Computer Science", Year: "3rd Year",
				Interests: []string{"Web Development", "AI/ML", "Cloud Computing"}, Location: "Chennai"},
			{ID: 2, Kind: kind, Name: "Bob Smith", Role: "Student", Department: "Information Technology", Year: "4th Year",
				Interests: []string{"Mobile Development", "Blockchain", "Cybersecurity"}, Location: "Bangalore", Connected: true},
			{ID: 3, Kind: kind, Name: "Carol Davis", Role: "Student", Department: "Computer Science", Year: "2nd Year",
				Interests: []string{"Data Science", "Machine Learning", "Python"}, Location: "Chennai"},
		}, nil
	case models.PersonTeacher:
		return []models.Person{
			{ID: 1, Kind: kind, Name: "Dr. Sarah Johnson", Role: "Professor", Department: "Computer Science",
				Specialization: "Artificial Intelligence", Experience: "15 years", Location: "Chennai", Connected: true},
			{ID: 2, Kind: kind, Name: "Dr. Michael Chen", Role: "Associate Professor", Department: "Information Technology",
				Specialization: "Database Systems", Experience: "10 years", Location: "Chennai"},
		}, nil
	case models.PersonAlumni:
		return []models.Person{
			{ID: 1, Kind: kind, Name: "Emily Watson", Role: "Alumni", Department: "Computer Science", Batch: "2018-2022",
				CurrentRole: "Software Engineer at Google", Location: "San Francisco"},
			{ID: 2, Kind: kind, Name: "David Brown", Role: "Alumni", Department: "Information Technology", Batch: "2016-2020",
				CurrentRole: "Tech Lead at Microsoft", Location: "Seattle", Connected: true},
			{ID: 3, Kind: kind, Name: "Sophia Martinez", Role: "Alumni", Department: "Computer Science", Batch: "2017-2021",
				CurrentRole: "Data Scientist at Amazon", Location: "Boston"},
		}, nil
	default:
		return nil, nil
	}
}

// LeaveApplications returns the leave requests.
func (r *FixtureRepository) LeaveApplications(context.Context) ([]models.LeaveApplication, error) {
	return []models.LeaveApplication{
		{ID: 1, Type: "Medical Leave", FromDate: "2024-01-15", ToDate: "2024-01-17", Reason: "Fever and flu symptoms",
			Status: models.StatusApproved, AppliedOn: "2024-01-14", ApprovedBy: "Dr. Sarah Johnson"},
		{ID: 2, Type: "Personal Leave", FromDate: "2024-01-22", ToDate: "2024-01-23", Reason: "Family function",
			Status: models.StatusPending, AppliedOn: "2024-01-20"},
	}, nil
}

// OnDutyApplications returns the on-duty requests.
func (r *FixtureRepository) OnDutyApplications(context.Context) ([]models.OnDutyApplication, error) {
	return []models.OnDutyApplication{
		{ID: 1, Event: "Technical Symposium", Venue: "IIT Chennai", FromDate: "2024-01-10", ToDate: "2024-01-12",
			Status: models.StatusApproved, AppliedOn: "2024-01-05"},
		{ID: 2, Event: "Hackathon 2024", Venue: "NIT Trichy", FromDate: "2024-01-25", ToDate: "2024-01-27",
			Status: models.StatusPending, AppliedOn: "2024-01-18"},
	}, nil
}

// HallTickets returns the issued hall tickets.
func (r *FixtureRepository) HallTickets(context.Context) ([]models.HallTicket, error) {
	return []models.HallTicket{
		{
			ID: 1, Exam: "End Semester Examination - Semester 4", StartDate: "2024-02-01", EndDate: "2024-02-10",
			Venue: "Main Block", SeatNo: "A-204",
			Instructions: []string{
				"Carry your hall ticket and ID card to the examination hall",
				"Report to the examination hall 15 minutes before the start time",
				"Electronic devices are not allowed inside the examination hall",
				"Follow all instructions given by the invigilators",
			},
		},
	}, nil
}

// InternalMarks returns the internal assessment sheet.
func (r *FixtureRepository) InternalMarks(context.Context) ([]models.InternalMark, error) {
	return []models.InternalMark{
		{Subject: "Data Structures", Test1: 18, Test2: 20, Test3: 19, Assignment: 8, Total: 65, Max: 75},
		{Subject: "Database Systems", Test1: 20, Test2: 18, Test3: 20, Assignment: 9, Total: 67, Max: 75},
		{Subject: "Operating Systems", Test1: 17, Test2: 19, Test3: 18, Assignment: 7, Total: 61, Max: 75},
		{Subject: "Computer Networks", Test1: 19, Test2: 20, Test3: 19, Assignment: 10, Total: 68, Max: 75},
		{Subject: "Software Engineering", Test1: 20, Test2: 19, Test3: 20, Assignment: 9, Total: 68, Max: 75},
	}, nil
}

// SemesterResults returns the semester-wise results.
func (r *FixtureRepository) SemesterResults(context.Context) ([]models.SemesterResult, error) {
	return []models.SemesterResult{
		{Semester: "Semester 1", SGPA: 8.9, CGPA: 8.9, Credits: 24, Status: models.StatusCompleted},
		{Semester: "Semester 2", SGPA: 9.1, CGPA: 9.0, Credits: 24, Status: models.StatusCompleted},
		{Semester: "Semester 3", SGPA: 8.7, CGPA: 8.9, Credits: 24, Status: models.StatusCompleted},
		{Semester: "Semester 4", SGPA: 9.0, CGPA: 8.925, Credits: 24, Status: models.StatusOngoing},
	}, nil
}

// SubjectGrades returns the current semester's graded courses.
func (r *FixtureRepository) SubjectGrades(context.Context) ([]models.SubjectGrade, error) {
	return []models.SubjectGrade{
		{Code: "CS401", Name: "Data Structures", Credits: 4, Grade: "A+", Points: 10},
		{Code: "CS402", Name: "Database Systems", Credits: 4, Grade: "A+", Points: 10},
		{Code: "CS403", Name: "Operating Systems", Credits: 4, Grade: "A", Points: 9},
		{Code: "CS404", Name: "Computer Networks", Credits: 4, Grade: "A+", Points: 10},
		{Code: "CS405", Name: "Software Engineering", Credits: 4, Grade: "A+", Points: 10},
	}, nil
}

// MarksOverview returns the headline academic figures.
func (r *FixtureRepository) MarksOverview(context.Context) (*models.MarksOverview, error) {
	return &models.MarksOverview{
		CGPA: 8.92, SGPA: 9.0, CreditsEarned: 72, CreditsRequired: 96, Rank: 3, ClassSize: 60,
		OverallProgress: 75, YearsCompleted: 3, YearsTotal: 4,
		Summary: []string{
			"Consistent performance with CGPA above 8.9",
			"Strong in technical subjects",
			"On track to graduate with distinction",
			"Class rank improved from 5th to 3rd",
		},
	}, nil
}

// Gatepasses returns the hostel gatepasses.
func (r *FixtureRepository) Gatepasses(context.Context) ([]models.Gatepass, error) {
	return []models.Gatepass{
		{ID: 1, Type: "Home Visit", FromDate: "2024-01-15", ToDate: "2024-01-17", Reason: "Family emergency",
			Status: models.StatusApproved, AppliedOn: "2024-01-10"},
		{ID: 2, Type: "Local Visit", FromDate: "2024-01-20", ToDate: "2024-01-20", Reason: "Medical checkup",
			Status: models.StatusPending, AppliedOn: "2024-01-12"},
	}, nil
}

// GymSubscriptions returns the gym memberships.
func (r *FixtureRepository) GymSubscriptions(context.Context) ([]models.GymSubscription, error) {
	return []models.GymSubscription{
		{ID: 1, Plan: "Monthly", StartDate: "2024-01-01", EndDate: "2024-01-31", Amount: 500, Status: models.StatusActive},
	}, nil
}

// GymPlans returns the purchasable plans.
func (r *FixtureRepository) GymPlans(context.Context) ([]models.GymPlan, error) {
	return []models.GymPlan{
		{Key: "monthly", Name: "Monthly Plan", Days: 30, Price: 500},
		{Key: "quarterly", Name: "Quarterly Plan", Days: 90, Price: 1200, Savings: 300},
		{Key: "yearly", Name: "Yearly Plan", Days: 365, Price: 4000, Savings: 2000},
	}, nil
}

// HostelOverview returns the room and gym timings.
func (r *FixtureRepository) HostelOverview(context.Context) (*models.HostelOverview, error) {
	return &models.HostelOverview{
		Room: "A-204",
		Timings: []string{
			"Morning: 6:00 AM - 9:00 AM",
			"Evening: 5:00 PM - 9:00 PM",
			"Closed on Sundays and public holidays",
		},
	}, nil
}

// WiFiRequests returns the device registrations.
func (r *FixtureRepository) WiFiRequests(context.Context) ([]models.WiFiRequest, error) {
	return []models.WiFiRequest{
		{ID: 1, DeviceName: "John's Laptop", MACAddress: "00:1B:44:11:3A:B7", Status: models.StatusApproved,
			RequestDate: "2024-01-05", ApprovedDate: "2024-01-06", ExpiryDate: "2024-07-06"},
		{ID: 2, DeviceName: "John's Phone", MACAddress: "A4:D1:8C:12:4E:F2", Status: models.StatusPending,
			RequestDate: "2024-01-12"},
	}, nil
}

// WiFiNetwork returns the campus network description.
func (r *FixtureRepository) WiFiNetwork(context.Context) (*models.WiFiNetwork, error) {
	return &models.WiFiNetwork{
		SSID: "CampusHub-WiFi", Security: "WPA2-Enterprise", Coverage: "All campus buildings",
		HelpDesk: "+91 123-456-7890", Email: "support@campushub.edu", Hours: "9 AM - 6 PM (Mon-Sat)",
		Status: "Online", AllowedDevices: 2,
		Notes: []string{
			"Maximum 2 devices per student",
			"Access valid for 6 months",
			"Approval takes 1-2 working days",
			"Ensure MAC address is accurate",
		},
		Guidelines: []string{
			"Use your student credentials to connect",
			"Keep your device antivirus updated",
			"Report any connectivity issues immediately",
			"Do not share your credentials with others",
			"Avoid downloading large files during peak hours",
		},
	}, nil
}
