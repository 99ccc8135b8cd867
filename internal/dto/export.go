package dto

import "time"

// Report scopes and formats.
const (
	ReportScopeInternal = "internal"
	ReportScopeSemester = "semester"
	ReportFormatCSV     = "csv"
	ReportFormatPDF     = "pdf"
)

// ReportRequest asks for a marks report download.
type ReportRequest struct {
	Scope  string `form:"scope" json:"scope" validate:"required,oneof=internal semester"`
	Format string `form:"format" json:"format" validate:"required,oneof=csv pdf"`
}

// ExportLink is a signed, expiring download.
type ExportLink struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	Format    string    `json:"format"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}
