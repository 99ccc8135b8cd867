package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/campushub/internal/dto"
	"github.com/noah-isme/campushub/internal/models"
)

// DialogWiFiRequest is the device registration dialog.
const DialogWiFiRequest = "wifi-request"

type wifiProvider interface {
	WiFiRequests(ctx context.Context) ([]models.WiFiRequest, error)
	WiFiNetwork(ctx context.Context) (*models.WiFiNetwork, error)
}

// WiFiView is the typed payload of the Wi-Fi page.
type WiFiView struct {
	Network  *models.WiFiNetwork  `json:"network"`
	Requests []models.WiFiRequest `json:"requests"`
}

// WiFiService builds the Wi-Fi access page and handles device requests.
type WiFiService struct {
	provider wifiProvider
	dialogs  dialogs
	logger   *zap.Logger
}

// NewWiFiService constructs the service.
func NewWiFiService(provider wifiProvider, forms *FormValidator, notifier notifier, metrics *MetricsService, logger *zap.Logger) *WiFiService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WiFiService{provider: provider, dialogs: dialogs{forms: forms, notifier: notifier, metrics: metrics}, logger: logger}
}

// Page renders the device requests and network information.
func (s *WiFiService) Page(ctx context.Context, _ dto.PageQuery) (*dto.PageView, error) {
	network, err := s.provider.WiFiNetwork(ctx)
	if err != nil {
		s.logger.Error("load wifi network", zap.Error(err))
		return nil, providerError(err, "wi-fi network")
	}
	requests, err := s.provider.WiFiRequests(ctx)
	if err != nil {
		s.logger.Error("load wifi requests", zap.Error(err))
		return nil, providerError(err, "wi-fi requests")
	}

	active, pending := 0, 0
	cards := make([]dto.Card, 0, len(requests))
	for _, r := range requests {
		id := strconv.Itoa(r.ID)
		card := dto.Card{
			ID:       id,
			Title:    r.DeviceName,
			Subtitle: r.MACAddress,
			Badge:    badge(r.Status),
			Fields:   []dto.Field{{Label: "Requested", Value: r.RequestDate}},
		}
		if r.ApprovedDate != "" {
			card.Fields = append(card.Fields, dto.Field{Label: "Approved", Value: r.ApprovedDate})
		}
		if r.ExpiryDate != "" {
			card.Fields = append(card.Fields, dto.Field{Label: "Valid Until", Value: r.ExpiryDate})
		}
		switch r.Status {
		case models.StatusApproved:
			active++
			card.Actions = []dto.Action{postAction("certificate", "Download Certificate", "/wifi/requests/"+id+"/certificate", "download", "outline")}
		case models.StatusPending:
			pending++
		}
		cards = append(cards, card)
	}

	networkTone := models.ToneSuccess
	if network.Status != "Online" {
		networkTone = models.ToneDestructive
	}

	return &dto.PageView{
		Key:         models.PageWiFi,
		Path:        "/wifi",
		Title:       "Wi-Fi Access Request",
		Description: "Request and manage campus Wi-Fi access",
		Actions:     []dto.Action{openDialogAction("/wifi", DialogWiFiRequest, "New Request", "plus", "")},
		Stats: []dto.Stat{
			{Label: "Active Devices", Value: strconv.Itoa(active), Hint: "/ " + strconv.Itoa(network.AllowedDevices) + " allowed", Icon: "wifi", Tone: models.ToneSuccess},
			{Label: "Pending Requests", Value: strconv.Itoa(pending), Icon: "clock", Tone: models.ToneWarning},
			{Label: "Network Status", Value: network.Status, Tone: networkTone},
		},
		Sections: []dto.Section{
			{Key: "requests", Title: "My Requests", Cards: cards, Empty: "No Wi-Fi requests yet"},
			{
				Key:   "network",
				Title: "Network Details",
				Fields: []dto.Field{
					{Label: "SSID", Value: network.SSID},
					{Label: "Type", Value: network.Security},
					{Label: "Coverage", Value: network.Coverage},
				},
			},
			{
				Key:   "support",
				Title: "Support",
				Fields: []dto.Field{
					{Label: "Help Desk", Value: network.HelpDesk},
					{Label: "Email", Value: network.Email},
					{Label: "Hours", Value: network.Hours},
				},
			},
			{Key: "guidelines", Title: "Connection Guidelines", Items: network.Guidelines},
		},
		Dialogs: []dto.Dialog{
			{
				Key:         DialogWiFiRequest,
				Title:       "Request Wi-Fi Access",
				Description: "Fill in your device details to request Wi-Fi access",
				Action:      "/wifi/request",
				Submit:      "Submit Request",
				Fields: []dto.FormField{
					{Name: "device_name", Label: "Device Name *", Type: "text", Required: true, Placeholder: "e.g., John's Laptop"},
					{Name: "mac_address", Label: "MAC Address *", Type: "text", Required: true, Placeholder: "e.g., 00:1B:44:11:3A:B7", Hint: "Find your MAC address in device network settings"},
					{Name: "device_type", Label: "Device Type *", Type: "text", Required: true, Placeholder: "e.g., Laptop, Smartphone, Tablet"},
				},
				Notes: network.Notes,
			},
		},
		Data: WiFiView{Network: network, Requests: requests},
	}, nil
}

// Request validates a device registration. Nothing is stored.
func (s *WiFiService) Request(ctx context.Context, sessionID string, req dto.WiFiAccessRequest) *dto.SubmissionResult {
	values := req.Values()
	if msg := s.dialogs.forms.Check(req); msg != "" {
		return s.dialogs.reject(ctx, sessionID, DialogWiFiRequest, msg, values)
	}
	return s.dialogs.accept(ctx, sessionID, DialogWiFiRequest, "Wi-Fi access request submitted!", values)
}
