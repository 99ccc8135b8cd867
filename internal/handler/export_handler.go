package handler

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campushub/internal/dto"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
	"github.com/noah-isme/campushub/pkg/middleware/session"
	"github.com/noah-isme/campushub/pkg/response"
)

type exportService interface {
	MarksReport(ctx context.Context, sessionID string, req dto.ReportRequest) (*dto.ExportLink, error)
	HallTicket(ctx context.Context, sessionID, rawID string) (*dto.ExportLink, error)
	WiFiCertificate(ctx context.Context, sessionID, rawID string) (*dto.ExportLink, error)
	Resolve(token string) (string, error)
	Open(relPath string) (*os.File, error)
}

// ExportHandler issues signed downloads and serves them.
type ExportHandler struct {
	exports exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(exports exportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// MarksReport godoc
// @Summary Generate a marks report
// @Tags Exports
// @Accept json
// @Produce json
// @Param payload body dto.ReportRequest true "Scope and format"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /marks/reports [post]
func (h *ExportHandler) MarksReport(c *gin.Context) {
	var req dto.ReportRequest
	if !bindPayload(c, &req) {
		return
	}
	link, err := h.exports.MarksReport(c.Request.Context(), session.Value(c), req)
	respondLink(c, link, err)
}

// HallTicket godoc
// @Summary Download a hall ticket
// @Tags Exports
// @Produce json
// @Param id path int true "Hall ticket ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /leave/hall-tickets/{id}/download [post]
func (h *ExportHandler) HallTicket(c *gin.Context) {
	link, err := h.exports.HallTicket(c.Request.Context(), session.Value(c), c.Param("id"))
	respondLink(c, link, err)
}

// WiFiCertificate godoc
// @Summary Download the certificate of an approved Wi-Fi request
// @Tags Exports
// @Produce json
// @Param id path int true "Wi-Fi request ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /wifi/requests/{id}/certificate [post]
func (h *ExportHandler) WiFiCertificate(c *gin.Context) {
	link, err := h.exports.WiFiCertificate(c.Request.Context(), session.Value(c), c.Param("id"))
	respondLink(c, link, err)
}

// Download godoc
// @Summary Fetch a generated file
// @Tags Exports
// @Produce octet-stream
// @Param token path string true "Signed token"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Failure 410 {object} response.Envelope
// @Router /exports/{token} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	relPath, err := h.exports.Resolve(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.Open(relPath)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close() //nolint:errcheck
	info, err := file.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read export"))
		return
	}
	name := filepath.Base(relPath)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeContent(c.Writer, c.Request, name, info.ModTime(), file)
}

func respondLink(c *gin.Context, link *dto.ExportLink, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, link)
}
