package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
	appErrors "github.com/noah-isme/campushub/pkg/errors"
)

type tabRecord struct {
	id     int
	status models.Status
}

func TestStatusTabsPartition(t *testing.T) {
	records := []tabRecord{{1, models.StatusPending}, {2, models.StatusResolved}, {3, models.StatusPending}, {4, models.StatusInProgress}}
	tabs := statusTabs(records,
		func(r tabRecord) models.Status { return r.status },
		func(r tabRecord) dto.Card { return dto.Card{ID: strconv.Itoa(r.id)} },
		tabSpec{Key: "pending", Label: "Pending", Status: models.StatusPending},
		tabSpec{Key: "in-progress", Label: "In Progress", Status: models.StatusInProgress},
		tabSpec{Key: "resolved", Label: "Resolved", Status: models.StatusResolved},
	)

	require.Len(t, tabs, 4)
	assert.Equal(t, "all", tabs[0].Key)
	assert.Equal(t, 4, tabs[0].Count)
	assert.Equal(t, []int{2, 1, 1}, []int{tabs[1].Count, tabs[2].Count, tabs[3].Count})
	assertPartition(t, tabs)
}

func TestSelectTab(t *testing.T) {
	page := &dto.PageView{Tabs: []dto.Tab{{Key: "all"}, {Key: "pending"}}}

	require.NoError(t, selectTab(page, ""))
	assert.Equal(t, "all", page.ActiveTab)

	require.NoError(t, selectTab(page, "pending"))
	assert.Equal(t, "pending", page.ActiveTab)

	err := selectTab(page, "archived")
	assert.ErrorIs(t, err, appErrors.ErrUnknownTab)

	assert.ErrorIs(t, selectTab(&dto.PageView{}, "x"), appErrors.ErrUnknownTab)
}

func assertPartition(t *testing.T, tabs []dto.Tab) {
	t.Helper()
	seen := map[string]int{}
	sum := 0
	for _, tab := range tabs[1:] {
		sum += tab.Count
		for _, c := range tab.Cards {
			seen[c.ID]++
		}
	}
	assert.Equal(t, tabs[0].Count, sum)
	for _, c := range tabs[0].Cards {
		assert.Equal(t, 1, seen[c.ID], "card %s must appear in exactly one status tab", c.ID)
	}
}
