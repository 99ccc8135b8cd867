package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campushub/internal/dto"
)

func TestHostelPage(t *testing.T) {
	svc := NewHostelService(newFixtures(), newTestForms(), newTestNotifications(), nil, nil)

	page, err := svc.Page(context.Background(), dto.PageQuery{})
	require.NoError(t, err)
	require.Len(t, page.Stats, 3)
	assert.Equal(t, "A-204", page.Stats[0].Value)
	assert.Equal(t, "1", page.Stats[1].Value)
	assert.Equal(t, "Active", page.Stats[2].Value)

	gym, ok := page.FindDialog(DialogGym)
	require.True(t, ok)
	plans := gym.Fields[0].Options
	require.Len(t, plans, 3)
	assert.Equal(t, "Monthly Plan ₹500", plans[0].Label)
	assert.Equal(t, "Quarterly Plan ₹1,200", plans[1].Label)
	assert.Contains(t, plans[2].Hint, "Save ₹2,000")
	assert.Equal(t, "monthly", gym.Fields[0].Value)
}

func TestHostelGatepass(t *testing.T) {
	svc := NewHostelService(newFixtures(), newTestForms(), newTestNotifications(), nil, nil)
	ctx := context.Background()

	result := svc.ApplyGatepass(ctx, "s-1", dto.GatepassRequest{ToDate: "2024-02-02", Reason: "home"})
	assert.Equal(t, "Please select dates", result.Notification.Message)
	assert.True(t, result.DialogOpen)

	result = svc.ApplyGatepass(ctx, "s-1", dto.GatepassRequest{FromDate: "2024-02-01", ToDate: "2024-02-02"})
	assert.Equal(t, "Please fill all required fields", result.Notification.Message)

	result = svc.ApplyGatepass(ctx, "s-1", dto.GatepassRequest{FromDate: "2024-02-03", ToDate: "2024-02-02", Reason: "home"})
	assert.Equal(t, msgDateOrder, result.Notification.Message)

	result = svc.ApplyGatepass(ctx, "s-1", dto.GatepassRequest{FromDate: "2024-02-01", ToDate: "2024-02-02", Reason: "home"})
	assert.True(t, result.Accepted)
	assert.Equal(t, "Gatepass application submitted!", result.Notification.Message)
}

func TestHostelGym(t *testing.T) {
	svc := NewHostelService(newFixtures(), newTestForms(), newTestNotifications(), nil, nil)
	ctx := context.Background()

	result := svc.SubscribeGym(ctx, "s-1", dto.GymSubscriptionRequest{Plan: "yearly"})
	assert.True(t, result.Accepted)
	assert.Equal(t, "Gym subscription payment initiated!", result.Notification.Message)
	assert.Equal(t, "monthly", result.Form["plan"])

	result = svc.SubscribeGym(ctx, "s-1", dto.GymSubscriptionRequest{})
	assert.True(t, result.Accepted)

	result = svc.SubscribeGym(ctx, "s-1", dto.GymSubscriptionRequest{Plan: "daily"})
	assert.True(t, result.DialogOpen)
}

func TestRupees(t *testing.T) {
	assert.Equal(t, "₹500", rupees(500))
	assert.Equal(t, "₹1,200", rupees(1200))
	assert.Equal(t, "₹4,000", rupees(4000))
	assert.Equal(t, "₹1,20,000", rupees(120000))
}
