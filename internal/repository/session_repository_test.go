package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStoreToggleAndSet(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()

	open, err := store.SidebarOpen(ctx, "s-1")
	require.NoError(t, err)
	assert.False(t, open)

	open, err = store.ToggleSidebar(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, open)

	open, err = store.ToggleSidebar(ctx, "s-1")
	require.NoError(t, err)
	assert.False(t, open)

	require.NoError(t, store.SetSidebarOpen(ctx, "s-1", true))
	open, _ = store.SidebarOpen(ctx, "s-1")
	assert.True(t, open)

	other, _ := store.SidebarOpen(ctx, "s-2")
	assert.False(t, other)
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	base := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }
	ctx := context.Background()

	_, err := store.ToggleSidebar(ctx, "s-1")
	require.NoError(t, err)
	_, err = store.ToggleSidebar(ctx, "s-2")
	require.NoError(t, err)

	store.now = func() time.Time { return base.Add(2 * time.Minute) }
	open, _ := store.SidebarOpen(ctx, "s-1")
	assert.False(t, open)
	assert.Equal(t, 1, store.Sweep())
}
