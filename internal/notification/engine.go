// Package notification собирает уведомления для пользователя из двух источников:
// прямые уведомления сервера и оповещения о инцидентах в заданном радиусе.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/shenikar/geo_incident_sync/internal/connection"
	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/shenikar/geo_incident_sync/pkg/geo"
	"github.com/sirupsen/logrus"
)

const (
	areaTitle           = "Incident Nearby"
	sessionExpiredTitle = "Session Expired"
	// SessionExpiredMessage показывается один раз при принудительном выходе
	SessionExpiredMessage = "Your session has expired. Please log in again."
)

// ChannelProvider дает доступ к открытому каналу менеджера соединения
type ChannelProvider interface {
	ActiveChannel() (connection.Channel, bool)
}

// LocationProvider возвращает отслеживаемую позицию пользователя
type LocationProvider interface {
	Current() (geo.Point, bool)
}

// SettingsRepository хранит идентификатор пользователя и настройки оповещений
type SettingsRepository interface {
	GetUserID(ctx context.Context) (string, error)
	SaveUserID(ctx context.Context, userID string) error
	GetAlertSettings(ctx context.Context) (*models.AlertSettings, error)
	SaveAlertSettings(ctx context.Context, settings models.AlertSettings) error
}

// Forwarder пересылает оповещения по области во внешние системы
type Forwarder interface {
	Forward(ctx context.Context, userID string, n models.Notification, alert models.AreaAlert) error
}

// Journal записывает отправленные регистрации
type Journal interface {
	SaveRegistration(ctx context.Context, record *models.RegistrationRecord) error
}

// Options - необязательные зависимости и тайминги движка
type Options struct {
	Clock              clock.Clock
	ToastDuration      time.Duration
	DefaultRadiusMiles int
	Forwarder          Forwarder
	Journal            Journal
}

type Engine struct {
	channels  ChannelProvider
	location  LocationProvider
	settings  SettingsRepository
	forwarder Forwarder
	journal   Journal
	clk       clock.Clock
	toastTTL  time.Duration
	logger    *logrus.Entry

	mu         sync.Mutex
	items      []models.Notification
	toast      *models.Notification
	toastTimer *clock.Timer
	closed     bool

	// regMu сериализует решения register_user/update_location
	regMu      sync.Mutex
	alerts     models.AlertSettings
	userID     string
	registered bool
}

func NewEngine(channels ChannelProvider, location LocationProvider, settings SettingsRepository, opts Options, logger *logrus.Logger) *Engine {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = 5 * time.Second
	}
	if opts.DefaultRadiusMiles == 0 {
		opts.DefaultRadiusMiles = 3
	}
	return &Engine{
		channels:  channels,
		location:  location,
		settings:  settings,
		forwarder: opts.Forwarder,
		journal:   opts.Journal,
		clk:       opts.Clock,
		toastTTL:  opts.ToastDuration,
		logger:    logger.WithField("component", "notification"),
		alerts:    models.AlertSettings{RadiusMiles: opts.DefaultRadiusMiles},
	}
}

// Append добавляет уведомление в конец коллекции как есть, дополняя недостающие id, тип и время
func (e *Engine) Append(n models.Notification) models.Notification {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Type == "" {
		n.Type = models.NotificationInfo
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = e.clk.Now()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return n
	}
	e.items = append(e.items, n)
	e.showToastLocked(n)

	e.logger.WithFields(logrus.Fields{"notification_id": n.ID, "type": n.Type}).Debug("Notification added")
	return n
}

// HandleAreaAlert превращает оповещение сервера об инциденте поблизости в уведомление
func (e *Engine) HandleAreaAlert(ctx context.Context, alert models.AreaAlert) models.Notification {
	distance := geo.FormatMiles(alert.Distance)
	incident := alert.Incident

	n := e.Append(models.Notification{
		Type:    models.NotificationArea,
		Title:   areaTitle,
		Message: fmt.Sprintf("New %s incident reported %s from your location", incident.Category, distance),
		Details: map[string]any{
			"category": string(incident.Category),
			"priority": string(incident.Priority),
			"distance": distance,
		},
		Incident: &incident,
	})

	if e.forwarder != nil {
		e.regMu.Lock()
		userID := e.userID
		e.regMu.Unlock()
		if err := e.forwarder.Forward(ctx, userID, n, alert); err != nil {
			e.logger.WithError(err).WithField("notification_id", n.ID).Warn("Failed to forward area notification")
		}
	}
	return n
}

// NotifySessionExpired показывает одноразовое сообщение о принудительном выходе
func (e *Engine) NotifySessionExpired() {
	e.Append(models.Notification{
		Type:    models.NotificationError,
		Title:   sessionExpiredTitle,
		Message: SessionExpiredMessage,
	})
}

// NotifyLocationFailed показывает закрываемое предупреждение об ошибке геолокации
func (e *Engine) NotifyLocationFailed(reason string) {
	e.Append(models.Notification{
		Type:    models.NotificationWarning,
		Title:   "Location Unavailable",
		Message: "Unable to determine your location. Area alerts resume once it is available.",
		Details: map[string]any{"reason": reason},
	})
}

// Notifications возвращает копию коллекции в порядке добавления
func (e *Engine) Notifications() []models.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Notification, len(e.items))
	copy(out, e.items)
	return out
}

// Dismiss удаляет уведомление по id
func (e *Engine) Dismiss(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, n := range e.items {
		if n.ID == id {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return true
		}
	}
	return false
}

// ClearAll очищает коллекцию; показанный тост скрывается по своему таймеру
func (e *Engine) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = nil
}

// Counts возвращает число уведомлений по типам
func (e *Engine) Counts() map[models.NotificationType]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	counts := make(map[models.NotificationType]int)
	for _, n := range e.items {
		counts[n.Type]++
	}
	return counts
}

// Toast возвращает последнее показанное уведомление, пока не истекло окно показа
func (e *Engine) Toast() (models.Notification, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.toast == nil {
		return models.Notification{}, false
	}
	return *e.toast, true
}

// HideToast скрывает тост досрочно, коллекция не меняется
func (e *Engine) HideToast() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopToastLocked()
}

// Close останавливает таймер тоста
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopToastLocked()
	e.closed = true
}

func (e *Engine) showToastLocked(n models.Notification) {
	e.stopToastLocked()
	e.toast = &n
	id := n.ID
	e.toastTimer = e.clk.AfterFunc(e.toastTTL, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.toast != nil && e.toast.ID == id {
			e.toast = nil
			e.toastTimer = nil
		}
	})
}

func (e *Engine) stopToastLocked() {
	if e.toastTimer != nil {
		e.toastTimer.Stop()
		e.toastTimer = nil
	}
	e.toast = nil
}
