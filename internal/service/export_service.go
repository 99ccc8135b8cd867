package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
	"github.com/noah-isme/campushub/pkg/export"
	"github.com/noah-isme/campushub/pkg/storage"
)

type exportProvider interface {
	InternalMarks(ctx context.Context) ([]models.InternalMark, error)
	SemesterResults(ctx context.Context) ([]models.SemesterResult, error)
	HallTickets(ctx context.Context) ([]models.HallTicket, error)
	WiFiRequests(ctx context.Context) ([]models.WiFiRequest, error)
}

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
	RenderDocument(doc export.Document) ([]byte, error)
}

type infoNotifier interface {
	Info(ctx context.Context, sessionID, message string) models.Notification
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	APIPrefix string
	ResultTTL time.Duration
}

// ExportService renders downloadable documents and hands out signed links.
type ExportService struct {
	provider exportProvider
	storage  fileStorage
	csv      csvRenderer
	pdf      pdfRenderer
	signer   *storage.SignedURLSigner
	notifier infoNotifier
	metrics  *MetricsService
	logger   *zap.Logger
	cfg      ExportConfig
}

// NewExportService constructs an ExportService.
func NewExportService(provider exportProvider, store fileStorage, signer *storage.SignedURLSigner, notifier infoNotifier, metrics *MetricsService, cfg ExportConfig, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = time.Hour
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter(Brand)
	}
	return &ExportService{
		provider: provider,
		storage:  store,
		csv:      csv,
		pdf:      pdf,
		signer:   signer,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
	}
}

// MarksReport renders the internal or semester marks as CSV or PDF.
func (s *ExportService) MarksReport(ctx context.Context, sessionID string, req dto.ReportRequest) (*dto.ExportLink, error) {
	var (
		dataset export.Dataset
		title   string
		err     error
	)
	switch req.Scope {
	case dto.ReportScopeInternal:
		dataset, err = s.internalDataset(ctx)
		title = "Internal Assessment Marks"
	case dto.ReportScopeSemester:
		dataset, err = s.semesterDataset(ctx)
		title = "Semester-wise Performance"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "scope must be internal or semester")
	}
	if err != nil {
		return nil, err
	}

	var payload []byte
	switch req.Format {
	case dto.ReportFormatCSV:
		payload, err = s.csv.Render(dataset)
	case dto.ReportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	if err != nil {
		s.logger.Error("render marks report", zap.String("scope", req.Scope), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrExportFailed.Code, appErrors.ErrExportFailed.Status, appErrors.ErrExportFailed.Message)
	}
	return s.publish(ctx, sessionID, "marks", "marks-"+req.Scope+"."+req.Format, req.Format, payload)
}

// HallTicket renders the admit card with the given id as a PDF.
func (s *ExportService) HallTicket(ctx context.Context, sessionID, rawID string) (*dto.ExportLink, error) {
	id, err := parseID(rawID, "hall ticket")
	if err != nil {
		return nil, err
	}
	tickets, err := s.provider.HallTickets(ctx)
	if err != nil {
		return nil, providerError(err, "hall tickets")
	}
	for _, t := range tickets {
		if t.ID != id {
			continue
		}
		payload, err := s.pdf.RenderDocument(export.Document{
			Title:    "Hall Ticket",
			Subtitle: t.Exam,
			Fields: []export.Field{
				{Label: "Student", Value: models.DefaultProfile.Name},
				{Label: "Start Date", Value: t.StartDate},
				{Label: "End Date", Value: t.EndDate},
				{Label: "Venue", Value: t.Venue},
				{Label: "Seat Number", Value: t.SeatNo},
			},
			Notes: t.Instructions,
		})
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrExportFailed.Code, appErrors.ErrExportFailed.Status, appErrors.ErrExportFailed.Message)
		}
		return s.publish(ctx, sessionID, "hall_ticket", "hall-ticket-"+rawID+".pdf", dto.ReportFormatPDF, payload)
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "hall ticket not found")
}

// WiFiCertificate renders the access certificate of an approved device.
func (s *ExportService) WiFiCertificate(ctx context.Context, sessionID, rawID string) (*dto.ExportLink, error) {
	id, err := parseID(rawID, "wi-fi request")
	if err != nil {
		return nil, err
	}
	requests, err := s.provider.WiFiRequests(ctx)
	if err != nil {
		return nil, providerError(err, "wi-fi requests")
	}
	for _, r := range requests {
		if r.ID != id {
			continue
		}
		if r.Status != models.StatusApproved {
			return nil, appErrors.Clone(appErrors.ErrValidation, "certificate is only available for approved requests")
		}
		payload, err := s.pdf.RenderDocument(export.Document{
			Title:    "Wi-Fi Access Certificate",
			Subtitle: r.DeviceName,
			Fields: []export.Field{
				{Label: "Student", Value: models.DefaultProfile.Name},
				{Label: "Device", Value: r.DeviceName},
				{Label: "MAC Address", Value: r.MACAddress},
				{Label: "Approved", Value: r.ApprovedDate},
				{Label: "Valid Until", Value: r.ExpiryDate},
			},
			Footer: "Present this certificate to the IT help desk if your device loses access.",
		})
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrExportFailed.Code, appErrors.ErrExportFailed.Status, appErrors.ErrExportFailed.Message)
		}
		return s.publish(ctx, sessionID, "wifi_certificate", "wifi-certificate-"+rawID+".pdf", dto.ReportFormatPDF, payload)
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "wi-fi request not found")
}

// Resolve checks a download token and returns the stored path.
func (s *ExportService) Resolve(token string) (string, error) {
	_, relPath, _, err := s.signer.Parse(token)
	if err != nil {
		if errors.Is(err, storage.ErrTokenExpired) {
			return "", appErrors.ErrLinkExpired
		}
		return "", appErrors.Clone(appErrors.ErrNotFound, "download not found")
	}
	return relPath, nil
}

// Open returns a handle to a stored export.
func (s *ExportService) Open(relPath string) (*os.File, error) {
	file, err := s.storage.Open(relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "download not found")
	}
	return file, nil
}

// Cleanup removes files older than ttl, or the configured ResultTTL when ttl <= 0.
func (s *ExportService) Cleanup(ttl time.Duration) ([]string, error) {
	if ttl <= 0 {
		ttl = s.cfg.ResultTTL
	}
	return s.storage.CleanupOlderThan(ttl)
}

func (s *ExportService) publish(ctx context.Context, sessionID, kind, fileName, format string, payload []byte) (*dto.ExportLink, error) {
	id := uuid.NewString()
	relPath, err := s.storage.Save(path.Join(id, fileName), payload)
	if err != nil {
		s.logger.Error("store export", zap.String("kind", kind), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrExportFailed.Code, appErrors.ErrExportFailed.Status, appErrors.ErrExportFailed.Message)
	}
	token, expiresAt, err := s.signer.Generate(id, relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrExportFailed.Code, appErrors.ErrExportFailed.Status, appErrors.ErrExportFailed.Message)
	}
	s.metrics.ExportGenerated(kind, format)
	if s.notifier != nil {
		s.notifier.Info(ctx, sessionID, "Download ready: "+fileName)
	}

	prefix := strings.TrimRight(s.cfg.APIPrefix, "/")
	if prefix == "" {
		prefix = "/api/v1"
	}
	return &dto.ExportLink{
		ID:        id,
		FileName:  fileName,
		Format:    format,
		URL:       fmt.Sprintf("%s/exports/%s", prefix, token),
		ExpiresAt: expiresAt,
	}, nil
}

func (s *ExportService) internalDataset(ctx context.Context) (export.Dataset, error) {
	marks, err := s.provider.InternalMarks(ctx)
	if err != nil {
		return export.Dataset{}, providerError(err, "marks")
	}
	rows := make([][]string, 0, len(marks))
	for _, m := range marks {
		rows = append(rows, []string{
			m.Subject,
			strconv.Itoa(m.Test1),
			strconv.Itoa(m.Test2),
			strconv.Itoa(m.Test3),
			strconv.Itoa(m.Assignment),
			fmt.Sprintf("%d/%d", m.Total, m.Max),
			strconv.Itoa(m.Percentage()) + "%",
		})
	}
	return export.Dataset{
		Headers: []string{"Subject", "Test 1", "Test 2", "Test 3", "Assignment", "Total", "Percentage"},
		Rows:    rows,
	}, nil
}

func (s *ExportService) semesterDataset(ctx context.Context) (export.Dataset, error) {
	results, err := s.provider.SemesterResults(ctx)
	if err != nil {
		return export.Dataset{}, providerError(err, "marks")
	}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Semester,
			strconv.FormatFloat(r.SGPA, 'f', -1, 64),
			strconv.FormatFloat(r.CGPA, 'f', -1, 64),
			strconv.Itoa(r.Credits),
			models.BadgeFor(r.Status).Label,
		})
	}
	return export.Dataset{
		Headers: []string{"Semester", "SGPA", "CGPA", "Credits", "Status"},
		Rows:    rows,
	}, nil
}
