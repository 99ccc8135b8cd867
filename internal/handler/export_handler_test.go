package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHandlerMarksReportRoundTrip(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.postJSON(testPrefix+"/marks/reports", `{"scope":"semester","format":"csv"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, "marks-semester.csv", envelope.Data["fileName"])
	url, ok := envelope.Data["url"].(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(url, testPrefix+"/exports/"))

	download := stack.get(url)
	require.Equal(t, http.StatusOK, download.Code)
	assert.Contains(t, download.Header().Get("Content-Disposition"), "marks-semester.csv")
	assert.True(t, strings.HasPrefix(download.Body.String(), "Semester,SGPA,CGPA,Credits,Status"))
}

func TestExportHandlerInvalidFormat(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.postJSON(testPrefix+"/marks/reports", `{"scope":"internal","format":"xlsx"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportHandlerCertificateRequiresApproval(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPost, testPrefix+"/wifi/requests/2/certificate", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = stack.do(http.MethodPost, testPrefix+"/wifi/requests/1/certificate", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExportHandlerHallTicketPDF(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(http.MethodPost, testPrefix+"/leave/hall-tickets/1/download", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	url := decodeEnvelope(t, rec.Body.Bytes()).Data["url"].(string)

	download := stack.get(url)
	require.Equal(t, http.StatusOK, download.Code)
	assert.Equal(t, "application/pdf", download.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(download.Body.String(), "%PDF"))
}

func TestExportHandlerTamperedToken(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.get(testPrefix + "/exports/not-a-token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}
