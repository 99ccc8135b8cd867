package models

// WiFiRequest is a device registration for campus Wi-Fi.
type WiFiRequest struct {
	ID           int    `json:"id"`
	DeviceName   string `json:"deviceName"`
	MACAddress   string `json:"macAddress"`
	Status       Status `json:"status"`
	RequestDate  string `json:"requestDate"`
	ApprovedDate string `json:"approvedDate,omitempty"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
}

// WiFiNetwork describes the campus network and its support desk.
type WiFiNetwork struct {
	SSID           string   `json:"ssid"`
	Security       string   `json:"security"`
	Coverage       string   `json:"coverage"`
	HelpDesk       string   `json:"helpDesk"`
	Email          string   `json:"email"`
	Hours          string   `json:"hours"`
	Status         string   `json:"status"`
	AllowedDevices int      `json:"allowedDevices"`
	Notes          []string `json:"notes"`
	Guidelines     []string `json:"guidelines"`
}
