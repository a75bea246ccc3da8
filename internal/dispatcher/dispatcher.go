// Package dispatcher разбирает входящие кадры и направляет полезную нагрузку владельцу.
package dispatcher

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/sirupsen/logrus"
)

var errEmptyPayload = errors.New("dispatcher: empty payload")

// IncidentSink - хранилище инцидентов
type IncidentSink interface {
	Upsert(record models.Incident)
	Update(record models.Incident) bool
	Remove(id int64) bool
}

// NotificationSink - движок уведомлений
type NotificationSink interface {
	Append(n models.Notification) models.Notification
	HandleAreaAlert(ctx context.Context, alert models.AreaAlert) models.Notification
}

type Dispatcher struct {
	incidents     IncidentSink
	notifications NotificationSink
	logger        *logrus.Entry
}

func New(incidents IncidentSink, notifications NotificationSink, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		incidents:     incidents,
		notifications: notifications,
		logger:        logger.WithField("component", "dispatcher"),
	}
}

// HandleFrame обрабатывает один кадр. Некорректные кадры логируются и отбрасываются,
// кадры неизвестного типа отбрасываются молча.
func (d *Dispatcher) HandleFrame(ctx context.Context, raw []byte) {
	var frame models.InboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		d.logger.WithError(err).WithField("frame", truncate(raw)).Warn("Dropping malformed frame")
		return
	}
	if frame.Type == "" {
		d.logger.WithField("frame", truncate(raw)).Warn("Dropping frame without type")
		return
	}

	log := d.logger.WithField("type", frame.Type)

	switch frame.Type {
	case models.FrameNewIncident:
		record, ok := d.decodeIncident(log, frame.Data)
		if !ok {
			return
		}
		d.incidents.Upsert(record)
		log.WithField("incident_id", record.ID).Debug("Incident upserted")

	case models.FrameStatusUpdate:
		record, ok := d.decodeIncident(log, frame.Data)
		if !ok {
			return
		}
		if !d.incidents.Update(record) {
			log.WithField("incident_id", record.ID).Debug("Status update for unknown incident ignored")
		}

	case models.FrameIncidentDeleted:
		var payload models.DeletedIncident
		if err := decode(frame.Data, &payload); err != nil || payload.ID == 0 {
			log.WithError(err).Warn("Dropping frame with invalid payload")
			return
		}
		d.incidents.Remove(payload.ID)

	case models.FrameNotification:
		var n models.Notification
		if err := decode(frame.Notification, &n); err != nil {
			log.WithError(err).Warn("Dropping frame with invalid payload")
			return
		}
		d.notifications.Append(n)

	case models.FrameAreaNotification:
		var alert models.AreaAlert
		if err := decode(frame.Data, &alert); err != nil || alert.Incident.ID == 0 {
			log.WithError(err).Warn("Dropping frame with invalid payload")
			return
		}
		d.notifications.HandleAreaAlert(ctx, alert)

	default:
		// pong, location_updated, user_registered и прочие ответы сервера
		log.Debug("Ignoring frame of unknown type")
	}
}

func (d *Dispatcher) decodeIncident(log *logrus.Entry, data json.RawMessage) (models.Incident, bool) {
	var record models.Incident
	if err := decode(data, &record); err != nil || record.ID == 0 {
		log.WithError(err).Warn("Dropping frame with invalid payload")
		return models.Incident{}, false
	}
	return record, true
}

func decode(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return errEmptyPayload
	}
	return json.Unmarshal(data, v)
}

func truncate(raw []byte) string {
	const limit = 256
	if len(raw) > limit {
		return string(raw[:limit]) + "..."
	}
	return string(raw)
}
