package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
)

func TestPlaceholderNotFound(t *testing.T) {
	view, err := NewPlaceholderService().NotFound(context.Background(), dto.PageQuery{Path: "/nope"})
	require.NoError(t, err)
	assert.Equal(t, models.PageNotFound, view.Key)
	assert.Equal(t, "/nope", view.Path)
	require.Len(t, view.Actions, 1)
	assert.Equal(t, "/", view.Actions[0].Href)
}

func TestPlaceholderComingSoon(t *testing.T) {
	build := NewPlaceholderService().ComingSoon("Library", "Borrow and renew books")

	view, err := build(context.Background(), dto.PageQuery{Path: "/library"})
	require.NoError(t, err)
	assert.Equal(t, models.PageComingSoon, view.Key)
	assert.Equal(t, "Library", view.Title)
	assert.Equal(t, "Borrow and renew books", view.Description)
	require.Len(t, view.Sections, 1)
	assert.Equal(t, comingSoonNote, view.Sections[0].Empty)
}
