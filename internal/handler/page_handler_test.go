package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/middleware"
	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

type fakePortalSrv struct {
	view   *dto.PortalView
	err    error
	lastQ  dto.PageQuery
	called bool
}

func (f *fakePortalSrv) Render(_ context.Context, _ string, q dto.PageQuery) (*dto.PortalView, error) {
	f.called = true
	f.lastQ = q
	return f.view, f.err
}

func TestPageHandlerRendersView(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakePortalSrv{view: &dto.PortalView{
		Shell:    &dto.ShellView{Brand: "CampusHub", Path: "/leave"},
		Page:     &dto.PageView{Key: models.PageLeave, Path: "/leave", Title: "Leave & On-Duty"},
		Status:   http.StatusOK,
		CacheHit: true,
	}}
	handler := NewPageHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/pages?path=/leave&tab=on-duty&dialog=leave", nil)
	middleware.WithResponseMeta()(c)

	handler.Get(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/leave", srv.lastQ.Path)
	assert.Equal(t, "on-duty", srv.lastQ.Tab)
	assert.Equal(t, "leave", srv.lastQ.Dialog)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	assert.Equal(t, "leave", envelope.Meta["page"])
	page, ok := envelope.Data["page"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Leave & On-Duty", page["title"])
}

func TestPageHandlerNotFoundStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakePortalSrv{view: &dto.PortalView{
		Shell:  &dto.ShellView{Path: "/nowhere"},
		Page:   &dto.PageView{Key: models.PageNotFound, Title: "404"},
		Status: http.StatusNotFound,
	}}
	handler := NewPageHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/pages?path=/nowhere", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"404"`)
}

func TestPageHandlerUnknownTab(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewPageHandler(&fakePortalSrv{err: appErrors.Clone(appErrors.ErrUnknownTab, "unknown tab archived")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/pages?path=/complaints&tab=archived", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "UNKNOWN_TAB", envelope.Error["code"])
}
