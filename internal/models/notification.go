package models

import "time"

// NotificationType - тип уведомления
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
	NotificationArea    NotificationType = "area"
)

// Notification - уведомление для пользователя, в хранилище не сохраняется
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Details   map[string]any   `json:"details,omitempty"`
	Incident  *Incident        `json:"incident,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
