package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/repository"
	"github.com/noah-isme/campushub/internal/service"
	"github.com/noah-isme/campushub/pkg/export"
	"github.com/noah-isme/campushub/pkg/middleware/session"
	"github.com/noah-isme/campushub/pkg/storage"
)

const (
	testSession = "7b0c2f4e-3c1a-4d6f-9a51-2f7d8e0b1c3a"
	testPrefix  = "/api/v1"
)

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Error map[string]interface{} `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

type testStack struct {
	router        *gin.Engine
	notifications *service.NotificationService
	exports       *service.ExportService
}

// newTestStack wires the whole portal over the static fixtures.
func newTestStack(t *testing.T) *testStack {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	fixtures := repository.NewFixtureRepository()
	metrics := service.NewMetricsService()
	notifications := service.NewNotificationService(0, nil, metrics, logger)
	forms := service.NewFormValidator(validator.New())
	shell := service.NewShellService(repository.NewMemorySessionStore(time.Hour), metrics, logger)
	portal := service.NewPortalService(shell, service.NewCacheService(nil, metrics, 0, logger, false), notifications, logger)
	pages := service.NewPages(fixtures, forms, notifications, metrics, logger)
	pages.Register(portal)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	exports := service.NewExportService(fixtures, store, storage.NewSignedURLSigner("secret", time.Hour), notifications, metrics,
		service.ExportConfig{APIPrefix: testPrefix, ResultTTL: time.Hour}, logger, export.NewCSVExporter(), export.NewPDFExporter(service.Brand))

	formServices := FormServices{
		Assignments: pages.Assignments,
		Complaints:  pages.Complaints,
		Groups:      pages.Groups,
		Hostel:      pages.Hostel,
		Leave:       pages.Leave,
		WiFi:        pages.WiFi,
	}

	tmpl, err := Templates()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(session.Middleware(session.Options{}))
	Register(r, testPrefix, Handlers{
		Shell:         NewShellHandler(shell),
		Pages:         NewPageHandler(portal),
		Forms:         NewFormHandler(formServices),
		Actions:       NewActionHandler(pages.Events, pages.Connect),
		Notifications: NewNotificationHandler(notifications, time.Hour),
		Exports:       NewExportHandler(exports),
		Metrics:       NewMetricsHandler(metrics),
		Web:           NewWebHandler(portal, shell, formServices, pages.Events, pages.Connect, exports, testPrefix, logger),
	})
	return &testStack{router: r, notifications: notifications, exports: exports}
}

func (s *testStack) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(session.HeaderKey, testSession)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testStack) get(target string) *httptest.ResponseRecorder {
	return s.do(http.MethodGet, target, nil, "")
}

func (s *testStack) postJSON(target, body string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, target, strings.NewReader(body), "application/json")
}

func (s *testStack) postForm(target, body string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, target, strings.NewReader(body), "application/x-www-form-urlencoded")
}
