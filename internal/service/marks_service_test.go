package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
)

func TestMarksPage(t *testing.T) {
	svc := NewMarksService(newFixtures(), nil)

	page, err := svc.Page(context.Background(), dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, page.Stats, 4)
	assert.Equal(t, "8.92", page.Stats[0].Value)
	assert.Equal(t, "9.0", page.Stats[1].Value)
	assert.Equal(t, "/ 96", page.Stats[2].Hint)
	assert.Equal(t, "3", page.Stats[3].Value)

	internal, ok := page.FindTab("internal")
	require.True(t, ok)
	table := internal.Sections[0].Table
	require.Len(t, table.Rows, 5)
	assert.Equal(t, "87%", table.Rows[0][6].Text)
	assert.Equal(t, models.ToneSuccess, table.Rows[0][6].Badge.Tone)
	assert.Equal(t, models.TonePrimary, table.Rows[2][6].Badge.Tone)
	assert.Equal(t, "/marks/reports?scope=internal&format=csv", internal.Actions[0].Href)

	semester, _ := page.FindTab("semester")
	cards := semester.Sections[0].Cards
	require.Len(t, cards, 4)
	assert.Equal(t, models.ToneSuccess, cards[0].Badge.Tone)
	assert.Equal(t, models.ToneMuted, cards[3].Badge.Tone)
	grades := semester.Sections[1].Table
	assert.Equal(t, models.ToneAccent, grades.Rows[2][3].Badge.Tone)

	progress, _ := page.FindTab("progress")
	trend := progress.Sections[0].Cards
	assert.Equal(t, 75, trend[0].Progress.Value)
	assert.Equal(t, 75, trend[1].Progress.Value)
	assert.Equal(t, 90, trend[3].Progress.Value)
	assert.Equal(t, 89, trend[5].Progress.Value)
}

func TestFormatGPA(t *testing.T) {
	assert.Equal(t, "9.0", formatGPA(9))
	assert.Equal(t, "8.92", formatGPA(8.92))
	assert.Equal(t, "8.925", formatGPA(8.925))
}
