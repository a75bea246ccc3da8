package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/geo_incident_sync/internal/connection"
	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/shenikar/geo_incident_sync/pkg/geo"
	"github.com/sirupsen/logrus"
)

const (
	MinRadiusMiles = 1
	MaxRadiusMiles = 25
)

var ErrInvalidRadius = errors.New("notification: radius must be between 1 and 25 miles")

// Load читает сохраненные настройки и идентификатор пользователя
func (e *Engine) Load(ctx context.Context) error {
	settings, err := e.settings.GetAlertSettings(ctx)
	if err != nil {
		return fmt.Errorf("notification: could not load alert settings: %w", err)
	}
	userID, err := e.settings.GetUserID(ctx)
	if err != nil {
		return fmt.Errorf("notification: could not load user id: %w", err)
	}

	e.regMu.Lock()
	defer e.regMu.Unlock()
	if settings != nil {
		e.alerts.Enabled = settings.Enabled
		if validRadius(settings.RadiusMiles) {
			e.alerts.RadiusMiles = settings.RadiusMiles
		}
	}
	e.userID = userID
	return nil
}

// Settings возвращает текущие настройки оповещений
func (e *Engine) Settings() models.AlertSettings {
	e.regMu.Lock()
	defer e.regMu.Unlock()
	return e.alerts
}

// Enable включает оповещения по области и регистрирует пользователя на сервере
func (e *Engine) Enable(ctx context.Context, radiusMiles int) error {
	if !validRadius(radiusMiles) {
		return ErrInvalidRadius
	}
	e.regMu.Lock()
	defer e.regMu.Unlock()

	e.alerts = models.AlertSettings{Enabled: true, RadiusMiles: radiusMiles}
	if err := e.settings.SaveAlertSettings(ctx, e.alerts); err != nil {
		return fmt.Errorf("notification: could not save alert settings: %w", err)
	}
	e.sendRegistrationLocked(ctx)
	return nil
}

// SetRadius меняет радиус; при включенных оповещениях сервер получает update_location
func (e *Engine) SetRadius(ctx context.Context, radiusMiles int) error {
	if !validRadius(radiusMiles) {
		return ErrInvalidRadius
	}
	e.regMu.Lock()
	defer e.regMu.Unlock()

	e.alerts.RadiusMiles = radiusMiles
	if err := e.settings.SaveAlertSettings(ctx, e.alerts); err != nil {
		return fmt.Errorf("notification: could not save alert settings: %w", err)
	}
	if e.alerts.Enabled {
		e.sendRegistrationLocked(ctx)
	}
	return nil
}

// Disable выключает оповещения; сервер об этом не уведомляется
func (e *Engine) Disable(ctx context.Context) error {
	e.regMu.Lock()
	defer e.regMu.Unlock()

	e.alerts.Enabled = false
	if err := e.settings.SaveAlertSettings(ctx, e.alerts); err != nil {
		return fmt.Errorf("notification: could not save alert settings: %w", err)
	}
	return nil
}

// LocationChanged отправляет новую позицию, если оповещения включены
func (e *Engine) LocationChanged(ctx context.Context) {
	e.regMu.Lock()
	defer e.regMu.Unlock()
	if e.alerts.Enabled {
		e.sendRegistrationLocked(ctx)
	}
}

// ConnectionChanged сбрасывает регистрацию при смене канала и повторяет ее после переподключения
func (e *Engine) ConnectionChanged(ctx context.Context, state connection.State) {
	e.regMu.Lock()
	defer e.regMu.Unlock()

	switch state {
	case connection.StateOpen:
		e.registered = false
		if e.alerts.Enabled {
			e.sendRegistrationLocked(ctx)
		}
	case connection.StateClosed:
		e.registered = false
	}
}

// sendRegistrationLocked отправляет register_user при первой регистрации на канале
// и update_location после нее. Если канал не открыт, отправка пропускается.
func (e *Engine) sendRegistrationLocked(ctx context.Context) {
	point, ok := e.location.Current()
	if !ok {
		e.logger.Info("Location is not known yet, registration deferred")
		return
	}

	userID, err := e.ensureUserIDLocked(ctx)
	if err != nil {
		e.logger.WithError(err).Error("Failed to obtain user id, registration skipped")
		return
	}

	frameType := models.FrameUpdateLocation
	if !e.registered {
		frameType = models.FrameRegisterUser
	}
	log := e.logger.WithFields(logrus.Fields{"frame": frameType, "user_id": userID})

	ch, ok := e.channels.ActiveChannel()
	if !ok {
		log.Warn("Channel is not open, registration skipped")
		return
	}

	payload := models.LocationRegistration{
		UserID:             userID,
		Latitude:           point.Latitude,
		Longitude:          point.Longitude,
		NotificationRadius: geo.RadiusMeters(float64(e.alerts.RadiusMiles)),
	}
	if err := ch.WriteJSON(models.OutboundFrame{Type: frameType, Data: payload}); err != nil {
		log.WithError(err).Warn("Failed to send registration frame")
		return
	}
	e.registered = true
	log.WithField("radius_meters", payload.NotificationRadius).Info("Location registration sent")

	if e.journal != nil {
		record := &models.RegistrationRecord{
			UserID:       userID,
			FrameType:    frameType,
			Latitude:     point.Latitude,
			Longitude:    point.Longitude,
			RadiusMeters: payload.NotificationRadius,
		}
		if err := e.journal.SaveRegistration(ctx, record); err != nil {
			log.WithError(err).Warn("Failed to journal registration")
		}
	}
}

func (e *Engine) ensureUserIDLocked(ctx context.Context) (string, error) {
	if e.userID != "" {
		return e.userID, nil
	}
	userID := "user_" + uuid.NewString()
	if err := e.settings.SaveUserID(ctx, userID); err != nil {
		return "", fmt.Errorf("notification: could not save user id: %w", err)
	}
	e.userID = userID
	return userID, nil
}

func validRadius(miles int) bool {
	return miles >= MinRadiusMiles && miles <= MaxRadiusMiles
}
