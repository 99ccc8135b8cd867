package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/campushub/internal/dto"
)

func TestFormValidatorMessages(t *testing.T) {
	forms := newTestForms()

	tests := []struct {
		name string
		req  interface{}
		want string
	}{
		{"complaint ok", dto.ComplaintRequest{Category: "mess", Title: "Cold food", Description: "Lunch was cold"}, ""},
		{"blank title", dto.ComplaintRequest{Category: "mess", Title: "   ", Description: "Lunch was cold"}, msgRequiredFields},
		{"bad category", dto.ComplaintRequest{Category: "parking", Title: "x", Description: "y"}, msgInvalidOption},
		{"missing wins over malformed", dto.ComplaintRequest{Category: "parking", Title: "", Description: "y"}, msgRequiredFields},
		{"bad mac", dto.WiFiAccessRequest{DeviceName: "Laptop", MACAddress: "not-a-mac", DeviceType: "Laptop"}, msgInvalidMAC},
		{"good mac", dto.WiFiAccessRequest{DeviceName: "Laptop", MACAddress: "00:1B:44:11:3A:B7", DeviceType: "Laptop"}, ""},
		{"bad file", dto.AssignmentSubmissionRequest{AssignmentID: "1", FileName: "essay.exe"}, msgUnsupportedFile},
		{"docx file", dto.AssignmentSubmissionRequest{AssignmentID: "1", FileName: "Essay.DOCX"}, ""},
		{"bad date", dto.LeaveRequest{Type: "medical", FromDate: "15/01/2024", ToDate: "2024-01-16", Reason: "flu"}, msgInvalidDate},
		{"gym default", dto.GymSubscriptionRequest{}, ""},
		{"gym unknown plan", dto.GymSubscriptionRequest{Plan: "weekly"}, msgInvalidOption},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, forms.Check(tc.req))
		})
	}
}

func TestCheckDateRange(t *testing.T) {
	assert.Equal(t, "", checkDateRange("2024-01-15", "2024-01-15"))
	assert.Equal(t, "", checkDateRange("2024-01-15", "2024-01-17"))
	assert.Equal(t, msgDateOrder, checkDateRange("2024-01-17", "2024-01-15"))
	assert.Equal(t, msgInvalidDate, checkDateRange("yesterday", "2024-01-15"))
}
