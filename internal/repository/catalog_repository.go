package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

// Catalog kinds stored in portal_fixtures.
const (
	KindDashboard          = "dashboard"
	KindAssignments        = "assignments"
	KindSubjectAttendance  = "subject_attendance"
	KindRecentAttendance   = "recent_attendance"
	KindAttendanceTotals   = "attendance_totals"
	KindEvents             = "events"
	KindAnnouncements      = "announcements"
	KindComplaints         = "complaints"
	KindGroups             = "groups"
	KindChatMessages       = "chat_messages"
	KindLeaveApplications  = "leave_applications"
	KindOnDutyApplications = "on_duty_applications"
	KindHallTickets        = "hall_tickets"
	KindInternalMarks      = "internal_marks"
	KindSemesterResults    = "semester_results"
	KindSubjectGrades      = "subject_grades"
	KindMarksOverview      = "marks_overview"
	KindGatepasses         = "gatepasses"
	KindGymSubscriptions   = "gym_subscriptions"
	KindGymPlans           = "gym_plans"
	KindHostelOverview     = "hostel_overview"
	KindWiFiRequests       = "wifi_requests"
	KindWiFiNetwork        = "wifi_network"
)

const catalogQuery = `SELECT payload FROM portal_fixtures WHERE kind = $1 ORDER BY position`

type queryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

type catalogRow struct {
	Payload []byte `db:"payload"`
}

// CatalogRepository reads portal records from a Postgres catalog of JSONB
// documents. It never writes.
type CatalogRepository struct {
	db       *sqlx.DB
	observer queryObserver
}

// NewCatalogRepository constructs a catalog-backed data provider. observer may be nil.
func NewCatalogRepository(db *sqlx.DB, observer queryObserver) *CatalogRepository {
	return &CatalogRepository{db: db, observer: observer}
}

func (r *CatalogRepository) payloads(ctx context.Context, kind string) ([][]byte, error) {
	start := time.Now()
	var rows []catalogRow
	err := r.db.SelectContext(ctx, &rows, catalogQuery, kind)
	if r.observer != nil {
		r.observer.ObserveDBQuery("catalog_"+kind, time.Since(start))
	}
	if err != nil {
		return nil, fmt.Errorf("select %s documents: %w", kind, err)
	}
	out := make([][]byte, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Payload)
	}
	return out, nil
}

// list decodes every document of a kind into dest, a pointer to a slice.
func (r *CatalogRepository) list(ctx context.Context, kind string, dest interface{}) error {
	docs, err := r.payloads(ctx, kind)
	if err != nil {
		return err
	}
	raw := append([]byte{'['}, bytes.Join(docs, []byte{','})...)
	raw = append(raw, ']')
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode %s documents: %w", kind, err)
	}
	return nil
}

// one decodes the first document of a kind into dest.
func (r *CatalogRepository) one(ctx context.Context, kind string, dest interface{}) error {
	docs, err := r.payloads(ctx, kind)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s document missing", kind))
	}
	if err := json.Unmarshal(docs[0], dest); err != nil {
		return fmt.Errorf("decode %s document: %w", kind, err)
	}
	return nil
}

// DashboardSummary loads the dashboard document.
func (r *CatalogRepository) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	var out models.DashboardSummary
	if err := r.one(ctx, KindDashboard, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Assignments loads the coursework list.
func (r *CatalogRepository) Assignments(ctx context.Context) ([]models.Assignment, error) {
	var out []models.Assignment
	if err := r.list(ctx, KindAssignments, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubjectAttendance loads per-subject attendance.
func (r *CatalogRepository) SubjectAttendance(ctx context.Context) ([]models.SubjectAttendance, error) {
	var out []models.SubjectAttendance
	if err := r.list(ctx, KindSubjectAttendance, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentAttendance loads the latest attendance marks.
func (r *CatalogRepository) RecentAttendance(ctx context.Context) ([]models.AttendanceEntry, error) {
	var out []models.AttendanceEntry
	if err := r.list(ctx, KindRecentAttendance, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AttendanceTotals loads the term counters.
func (r *CatalogRepository) AttendanceTotals(ctx context.Context) (*models.AttendanceTotals, error) {
	var out models.AttendanceTotals
	if err := r.one(ctx, KindAttendanceTotals, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Events loads campus events.
func (r *CatalogRepository) Events(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := r.list(ctx, KindEvents, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Announcements loads pinned notices.
func (r *CatalogRepository) Announcements(ctx context.Context) ([]models.Announcement, error) {
	var out []models.Announcement
	if err := r.list(ctx, KindAnnouncements, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Complaints loads complaints.
func (r *CatalogRepository) Complaints(ctx context.Context) ([]models.Complaint, error) {
	var out []models.Complaint
	if err := r.list(ctx, KindComplaints, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Groups loads chat groups.
func (r *CatalogRepository) Groups(ctx context.Context) ([]models.Group, error) {
	var out []models.Group
	if err := r.list(ctx, KindGroups, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ChatMessages loads the conversation history.
func (r *CatalogRepository) ChatMessages(ctx context.Context) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	if err := r.list(ctx, KindChatMessages, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// People loads directory entries of one kind.
func (r *CatalogRepository) People(ctx context.Context, kind models.PersonKind) ([]models.Person, error) {
	var out []models.Person
	if err := r.list(ctx, "people_"+string(kind), &out); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Kind = kind
	}
	return out, nil
}

// LeaveApplications loads leave requests.
func (r *CatalogRepository) LeaveApplications(ctx context.Context) ([]models.LeaveApplication, error) {
	var out []models.LeaveApplication
	if err := r.list(ctx, KindLeaveApplications, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OnDutyApplications loads on-duty requests.
func (r *CatalogRepository) OnDutyApplications(ctx context.Context) ([]models.OnDutyApplication, error) {
	var out []models.OnDutyApplication
	if err := r.list(ctx, KindOnDutyApplications, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HallTickets loads hall tickets.
func (r *CatalogRepository) HallTickets(ctx context.Context) ([]models.HallTicket, error) {
	var out []models.HallTicket
	if err := r.list(ctx, KindHallTickets, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InternalMarks loads the internal assessment sheet.
func (r *CatalogRepository) InternalMarks(ctx context.Context) ([]models.InternalMark, error) {
	var out []models.InternalMark
	if err := r.list(ctx, KindInternalMarks, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SemesterResults loads semester results.
func (r *CatalogRepository) SemesterResults(ctx context.Context) ([]models.SemesterResult, error) {
	var out []models.SemesterResult
	if err := r.list(ctx, KindSemesterResults, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubjectGrades loads graded courses.
func (r *CatalogRepository) SubjectGrades(ctx context.Context) ([]models.SubjectGrade, error) {
	var out []models.SubjectGrade
	if err := r.list(ctx, KindSubjectGrades, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarksOverview loads the academic headline document.
func (r *CatalogRepository) MarksOverview(ctx context.Context) (*models.MarksOverview, error) {
	var out models.MarksOverview
	if err := r.one(ctx, KindMarksOverview, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Gatepasses loads hostel gatepasses.
func (r *CatalogRepository) Gatepasses(ctx context.Context) ([]models.Gatepass, error) {
	var out []models.Gatepass
	if err := r.list(ctx, KindGatepasses, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GymSubscriptions loads gym memberships.
func (r *CatalogRepository) GymSubscriptions(ctx context.Context) ([]models.GymSubscription, error) {
	var out []models.GymSubscription
	if err := r.list(ctx, KindGymSubscriptions, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GymPlans loads purchasable gym plans.
func (r *CatalogRepository) GymPlans(ctx context.Context) ([]models.GymPlan, error) {
	var out []models.GymPlan
	if err := r.list(ctx, KindGymPlans, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HostelOverview loads the hostel document.
func (r *CatalogRepository) HostelOverview(ctx context.Context) (*models.HostelOverview, error) {
	var out models.HostelOverview
	if err := r.one(ctx, KindHostelOverview, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WiFiRequests loads device registrations.
func (r *CatalogRepository) WiFiRequests(ctx context.Context) ([]models.WiFiRequest, error) {
	var out []models.WiFiRequest
	if err := r.list(ctx, KindWiFiRequests, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WiFiNetwork loads the network document.
func (r *CatalogRepository) WiFiNetwork(ctx context.Context) (*models.WiFiNetwork, error) {
	var out models.WiFiNetwork
	if err := r.one(ctx, KindWiFiNetwork, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
