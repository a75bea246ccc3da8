package v1

import (
	"time"

	"github.com/shenikar/geo_incident_sync/internal/models"
)

// CreateIncidentRequest DTO для отправки нового инцидента
// @Description DTO для отправки нового инцидента
type CreateIncidentRequest struct {
	Category    string  `json:"category" validate:"required,category"`
	Description string  `json:"description" validate:"max=1000"`
	Priority    string  `json:"priority" validate:"required,oneof=Low Medium High"`
	Latitude    float64 `json:"latitude" validate:"latitude"`
	Longitude   float64 `json:"longitude" validate:"longitude"`
}

// UpdateIncidentRequest DTO для изменения инцидента администратором; пустые поля не меняются
// @Description DTO для изменения инцидента администратором
type UpdateIncidentRequest struct {
	Category    *string `json:"category,omitempty" validate:"omitempty,category"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=Low Medium High Critical"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=Open 'In Progress' Resolved"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
	Highlighted bool    `json:"highlighted"`
	Pending     bool    `json:"pending"`
}

// NotificationResponse DTO для уведомления
// @Description DTO для уведомления
type NotificationResponse struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Details   map[string]any    `json:"details,omitempty"`
	Incident  *IncidentResponse `json:"incident,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// NotificationListResponse DTO для панели уведомлений
// @Description DTO для панели уведомлений
type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Counts map[string]int         `json:"counts"`
	Total  int                    `json:"total"`
}

// AlertSettingsRequest DTO для настроек оповещений по области
// @Description DTO для настроек оповещений по области
type AlertSettingsRequest struct {
	Enabled     bool `json:"enabled"`
	RadiusMiles int  `json:"radius_miles" validate:"omitempty,min=1,max=25"`
}

// LocationRequest DTO с позицией пользователя
// @Description DTO с позицией пользователя
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Accuracy  float64  `json:"accuracy" validate:"gte=0"`
}

// LocationErrorRequest DTO для отказа в получении позиции
// @Description DTO для отказа в получении позиции
type LocationErrorRequest struct {
	Reason string `json:"reason" validate:"required,max=255"`
}

// MapModeRequest DTO для смены режима карты
// @Description DTO для смены режима карты
type MapModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=markers icons heat predictions"`
}

// MapFilterRequest DTO для фильтра инцидентов на карте
// @Description DTO для фильтра инцидентов на карте
type MapFilterRequest struct {
	Category string `json:"category"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
}

// LoginRequest DTO для входа администратора
// @Description DTO для входа администратора
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount     int `json:"user_count"`
	WindowMinutes int `json:"window_minutes"`
}

// HealthResponse DTO для состояния приложения
// @Description DTO для состояния приложения
type HealthResponse struct {
	Status     string `json:"status"`
	Connection string `json:"connection"`
}

// SessionResponse DTO для состояния сессии
// @Description DTO для состояния сессии
type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

func sessionResponse(info models.SessionInfo) SessionResponse {
	return SessionResponse{Authenticated: info.Authenticated, ExpiresAt: info.ExpiresAt}
}
