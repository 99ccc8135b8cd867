package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/models"
	"github.com/noah-isme/campushub/pkg/middleware/session"
)

func TestBuildTargetsCoversRouteTable(t *testing.T) {
	targets, err := buildTargets("/assignments=completed")
	require.NoError(t, err)
	assert.Len(t, targets, len(models.RouteTable())+1)
	assert.Equal(t, target{Path: "/assignments", Tab: "completed"}, targets[len(targets)-1])

	_, err = buildTargets("/assignments")
	assert.Error(t, err)
}

func TestViewsEqualIgnoresMeta(t *testing.T) {
	a := []byte(`{"data":{"title":"Dashboard"},"meta":{"cache_hit":true}}`)
	b := []byte(`{"data":{"title":"Dashboard"},"meta":{"cache_hit":false}}`)
	assert.True(t, viewsEqual(a, b))

	c := []byte(`{"data":{"title":"Marks"}}`)
	assert.False(t, viewsEqual(a, c))
	assert.False(t, viewsEqual(a, []byte("<html>")))
}

func TestCompareTargetSendsSharedSession(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get(session.HeaderKey))
		assert.Equal(t, "/api/v1/pages", r.URL.Path)
		assert.Equal(t, "/marks", r.URL.Query().Get("path"))
		_, _ = w.Write([]byte(`{"data":{"title":"Marks"}}`))
	}))
	defer srv.Close()

	comp := compareTarget(&http.Client{Timeout: time.Second}, srv.URL, srv.URL, "/api/v1", target{Path: "/marks"})
	require.NoError(t, comp.Error)
	assert.True(t, comp.StatusMatch)
	assert.True(t, comp.BodyMatch)
	require.Len(t, seen, 2)
	assert.Equal(t, seen[0], seen[1])
}
