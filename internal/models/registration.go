package models

import (
	"time"
)

// LocationRegistration - данные регистрации пользователя для оповещений по области.
// Радиус передается в метрах.
type LocationRegistration struct {
	UserID             string  `json:"user_id"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	NotificationRadius int     `json:"notification_radius"`
}

// RegistrationRecord представляет запись журнала отправленных регистраций
type RegistrationRecord struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	FrameType    FrameType `json:"frame_type"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters int       `json:"radius_meters"`
	SentAt       time.Time `json:"sent_at"`
}

// AlertSettings - сохраняемые настройки оповещений по области
type AlertSettings struct {
	Enabled     bool `json:"enabled"`
	RadiusMiles int  `json:"radius_miles"`
}
