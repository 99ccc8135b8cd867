package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/dto"
)

func TestLeavePage(t *testing.T) {
	svc := NewLeaveService(newFixtures(), newTestForms(), newTestNotifications(), nil, nil)

	page, err := svc.Page(context.Background(), dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, page.Tabs, 3)
	assert.Equal(t, []string{"leave", "onduty", "hallticket"}, []string{page.Tabs[0].Key, page.Tabs[1].Key, page.Tabs[2].Key})

	tickets, _ := page.FindTab("hallticket")
	require.Len(t, tickets.Cards, 1)
	assert.Len(t, tickets.Cards[0].Notes, 4)
	assert.Equal(t, "/leave/hall-tickets/1/download", tickets.Cards[0].Actions[0].Href)

	_, ok := page.FindDialog(DialogOnDuty)
	assert.True(t, ok)
}

func TestLeaveApply(t *testing.T) {
	svc := NewLeaveService(newFixtures(), newTestForms(), newTestNotifications(), nil, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.LeaveRequest
		want string
		ok   bool
	}{
		{"valid", dto.LeaveRequest{Type: "medical", FromDate: "2024-02-01", ToDate: "2024-02-02", Reason: "flu"}, "Leave application submitted!", true},
		{"missing reason", dto.LeaveRequest{Type: "medical", FromDate: "2024-02-01", ToDate: "2024-02-02"}, "Please fill all required fields", false},
		{"reversed dates", dto.LeaveRequest{Type: "personal", FromDate: "2024-02-03", ToDate: "2024-02-02", Reason: "trip"}, msgDateOrder, false},
		{"unknown type", dto.LeaveRequest{Type: "vacation", FromDate: "2024-02-01", ToDate: "2024-02-02", Reason: "trip"}, msgInvalidOption, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := svc.ApplyLeave(ctx, "s-1", tc.req)
			assert.Equal(t, tc.ok, result.Accepted)
			assert.Equal(t, !tc.ok, result.DialogOpen)
			assert.Equal(t, tc.want, result.Notification.Message)
		})
	}
}

func TestOnDutyApply(t *testing.T) {
	svc := NewLeaveService(newFixtures(), newTestForms(), newTestNotifications(), nil, nil)
	ctx := context.Background()

	rejected := svc.ApplyOnDuty(ctx, "s-1", dto.OnDutyRequest{Event: "Symposium", Venue: "IIT", FromDate: "2024-02-01", ToDate: "2024-02-02"})
	assert.True(t, rejected.DialogOpen)
	assert.Equal(t, "IIT", rejected.Form["venue"])

	accepted := svc.ApplyOnDuty(ctx, "s-1", dto.OnDutyRequest{Event: "Symposium", Venue: "IIT", FromDate: "2024-02-01", ToDate: "2024-02-02", Description: "Paper"})
	assert.True(t, accepted.Accepted)
	assert.Equal(t, "On-duty application submitted!", accepted.Notification.Message)
}
