package models

import "encoding/json"

// FrameType - дискриминатор кадра в дуплексном канале
type FrameType string

const (
	// входящие
	FrameNewIncident      FrameType = "new_incident"
	FrameStatusUpdate     FrameType = "status_update"
	FrameIncidentDeleted  FrameType = "incident_deleted"
	FrameNotification     FrameType = "notification"
	FrameAreaNotification FrameType = "area_notification"

	// исходящие
	FrameRegisterUser   FrameType = "register_user"
	FrameUpdateLocation FrameType = "update_location"
)

// InboundFrame - входящий кадр; полезная нагрузка разбирается после определения типа
type InboundFrame struct {
	Type         FrameType       `json:"type"`
	Data         json.RawMessage `json:"data,omitempty"`
	Notification json.RawMessage `json:"notification,omitempty"`
}

// DeletedIncident - полезная нагрузка incident_deleted
type DeletedIncident struct {
	ID int64 `json:"id"`
}

// AreaAlert - полезная нагрузка area_notification, расстояние в метрах
type AreaAlert struct {
	Incident Incident `json:"incident"`
	Distance float64  `json:"distance"`
}

// OutboundFrame - исходящий кадр
type OutboundFrame struct {
	Type FrameType `json:"type"`
	Data any       `json:"data"`
}
