// Package location владеет отслеживаемой позицией пользователя.
package location

import (
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/shenikar/geo_incident_sync/pkg/geo"
	"github.com/sirupsen/logrus"
)

var ErrInvalidCoordinate = errors.New("location: invalid coordinate")

// Fix - последняя известная позиция
type Fix struct {
	Point     geo.Point `json:"point"`
	Accuracy  float64   `json:"accuracy_meters"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Tracker struct {
	clk    clock.Clock
	logger *logrus.Entry

	mu        sync.RWMutex
	fix       *Fix
	onChange  []func(geo.Point)
	onFailure []func(reason string)
}

func NewTracker(clk clock.Clock, logger *logrus.Logger) *Tracker {
	return &Tracker{
		clk:    clk,
		logger: logger.WithField("component", "location"),
	}
}

// OnChange регистрирует подписчика на смену позиции
func (t *Tracker) OnChange(fn func(geo.Point)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onChange = append(t.onChange, fn)
}

// OnFailure регистрирует подписчика на ошибки геолокации
func (t *Tracker) OnFailure(fn func(reason string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onFailure = append(t.onFailure, fn)
}

// Update сохраняет новую позицию и уведомляет подписчиков
func (t *Tracker) Update(p geo.Point, accuracy float64) error {
	if !p.Valid() {
		return ErrInvalidCoordinate
	}

	t.mu.Lock()
	t.fix = &Fix{Point: p, Accuracy: accuracy, UpdatedAt: t.clk.Now()}
	listeners := t.onChange
	t.mu.Unlock()

	t.logger.WithFields(logrus.Fields{"latitude": p.Latitude, "longitude": p.Longitude}).Debug("Location updated")
	for _, fn := range listeners {
		fn(p)
	}
	return nil
}

// Fail сообщает об ошибке геолокации; последняя известная позиция сохраняется
func (t *Tracker) Fail(reason string) {
	t.mu.RLock()
	listeners := t.onFailure
	t.mu.RUnlock()

	t.logger.WithField("reason", reason).Warn("Geolocation failed")
	for _, fn := range listeners {
		fn(reason)
	}
}

// Current возвращает текущую позицию, если она известна
func (t *Tracker) Current() (geo.Point, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.fix == nil {
		return geo.Point{}, false
	}
	return t.fix.Point, true
}

// Fix возвращает копию последней позиции
func (t *Tracker) Fix() (Fix, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.fix == nil {
		return Fix{}, false
	}
	return *t.fix, true
}

func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fix = nil
}
