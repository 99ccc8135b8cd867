package models

import "time"

// NotificationLevel classifies a toast.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
	NotificationInfo    NotificationLevel = "info"
)

// Notification is a transient toast addressed to one visitor session.
type Notification struct {
	ID        string            `json:"id"`
	SessionID string            `json:"sessionId"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"createdAt"`
	Origin    string            `json:"origin,omitempty"`
}
