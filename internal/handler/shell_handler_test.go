package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/dto"
)

type fakeShellSrv struct {
	open     bool
	err      error
	lastPath string
	calls    []string
}

func (f *fakeShellSrv) view(path string) *dto.ShellView {
	return &dto.ShellView{Brand: "CampusHub", Path: path, SidebarOpen: f.open, BackdropVisible: f.open}
}

func (f *fakeShellSrv) Shell(_ context.Context, _ string, path string) (*dto.ShellView, error) {
	f.calls = append(f.calls, "shell")
	f.lastPath = path
	return f.view(path), f.err
}

func (f *fakeShellSrv) Toggle(_ context.Context, _ string, path string) (*dto.ShellView, error) {
	f.calls = append(f.calls, "toggle")
	f.lastPath = path
	f.open = !f.open
	return f.view(path), f.err
}

func (f *fakeShellSrv) Close(_ context.Context, _ string, path string) (*dto.ShellView, error) {
	f.calls = append(f.calls, "close")
	f.lastPath = path
	f.open = false
	return f.view(path), f.err
}

func (f *fakeShellSrv) Navigate(_ context.Context, _ string, path string) (*dto.ShellView, error) {
	f.calls = append(f.calls, "navigate")
	f.lastPath = path
	f.open = false
	return f.view(path), f.err
}

func TestShellHandlerToggle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeShellSrv{}
	handler := NewShellHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/shell/sidebar/toggle?path=/marks", nil)

	handler.Toggle(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Data["sidebarOpen"])
	assert.Equal(t, true, envelope.Data["backdropVisible"])
	assert.Equal(t, "/marks", srv.lastPath)
}

func TestShellHandlerGetDefaultsToRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeShellSrv{}
	handler := NewShellHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/shell", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/", srv.lastPath)
}

func TestShellHandlerNavigate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeShellSrv{open: true}
	handler := NewShellHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/shell/navigate", strings.NewReader(`{"path":"/hostel"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Navigate(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, false, envelope.Data["sidebarOpen"])
	assert.Equal(t, "/hostel", srv.lastPath)
}

func TestShellHandlerNavigateMalformed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeShellSrv{}
	handler := NewShellHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/shell/navigate", strings.NewReader(`{"path":`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Navigate(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, srv.calls)
}

func TestShellHandlerStoreFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewShellHandler(&fakeShellSrv{err: errors.New("redis down")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/shell/sidebar/close", nil)

	handler.Close(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
