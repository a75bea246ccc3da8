// Package maplayer управляет единственным активным слоем карты.
//
// При каждом переходе режима или изменении данных предыдущий слой снимается до
// создания нового. Пустые наборы данных слой не создают.
package maplayer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/sirupsen/logrus"
)

var ErrUnknownMode = errors.New("maplayer: unknown view mode")

// IncidentSource - отфильтрованный набор инцидентов
type IncidentSource interface {
	Filter(f models.IncidentFilter) []models.Incident
}

// TrendSource - сервис анализа трендов; для карты вызывается без токена
type TrendSource interface {
	TrendAnalysis(ctx context.Context, token string) (*models.TrendAnalysis, error)
}

// View - снимок состояния для UI
type View struct {
	Mode       Mode                  `json:"mode"`
	Filter     models.IncidentFilter `json:"filter"`
	Loading    bool                  `json:"loading"`
	TrendError string                `json:"trend_error,omitempty"`
	Overlay    *Overlay              `json:"overlay,omitempty"`
}

type Controller struct {
	surface   Surface
	incidents IncidentSource
	trends    TrendSource
	logger    *logrus.Entry

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	mode     Mode
	filter   models.IncidentFilter
	active   *Overlay
	nextID   uint64
	trend    *models.TrendAnalysis
	trendErr string
	loading  bool
	fetchGen uint64
	closed   bool
}

func NewController(surface Surface, incidents IncidentSource, trends TrendSource, logger *logrus.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		surface:   surface,
		incidents: incidents,
		trends:    trends,
		logger:    logger.WithField("component", "maplayer"),
		ctx:       ctx,
		cancel:    cancel,
		mode:      ModeMarkers,
	}
}

// SetMode переключает режим. Вход в режим прогнозов запускает загрузку данных трендов.
func (c *Controller) SetMode(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || mode == c.mode {
		return nil
	}

	c.logger.WithFields(logrus.Fields{"from": c.mode, "to": mode}).Debug("Switching view mode")
	c.mode = mode
	c.rebuildLocked()

	if mode == ModePredictions {
		c.fetchGen++
		c.loading = true
		c.wg.Add(1)
		go c.fetchTrend(c.fetchGen)
	}
	return nil
}

// SetFilter меняет фильтр инцидентов
func (c *Controller) SetFilter(f models.IncidentFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.filter = f
	if c.mode != ModePredictions {
		c.rebuildLocked()
	}
}

// Refresh перестраивает слой после изменения хранилища. Режим прогнозов от инцидентов не зависит.
func (c *Controller) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.mode == ModePredictions {
		return
	}
	c.rebuildLocked()
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		Mode:       c.mode,
		Filter:     c.filter,
		Loading:    c.loading && c.mode == ModePredictions,
		TrendError: c.trendErr,
		Overlay:    c.active,
	}
}

// Close отменяет загрузку трендов и снимает активный слой
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.cancel()
	c.disposeLocked()
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Controller) fetchTrend(gen uint64) {
	defer c.wg.Done()

	trend, err := c.trends.TrendAnalysis(c.ctx, "")

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.fetchGen {
		return
	}
	c.loading = false
	if err != nil {
		// прошлые прогнозы остаются на карте
		c.trendErr = err.Error()
		c.logger.WithError(err).Warn("Failed to load trend analysis, keeping previous predictions")
		return
	}
	c.trend = trend
	c.trendErr = ""
	if c.mode == ModePredictions {
		c.rebuildLocked()
	}
}

func (c *Controller) rebuildLocked() {
	c.disposeLocked()
	c.buildLocked()
}

// disposeLocked снимает активный слой; отсутствие слоя на поверхности не ошибка
func (c *Controller) disposeLocked() {
	if c.active == nil {
		return
	}
	id := c.active.ID
	c.active = nil
	if err := c.surface.Detach(id); err != nil {
		if errors.Is(err, ErrLayerNotAttached) {
			c.logger.WithField("overlay_id", id).Debug("Overlay already removed")
			return
		}
		c.logger.WithError(err).WithField("overlay_id", id).Warn("Failed to detach overlay")
	}
}

func (c *Controller) buildLocked() {
	overlay := &Overlay{Mode: c.mode}
	switch c.mode {
	case ModeMarkers:
		overlay.Markers = buildMarkers(c.incidents.Filter(c.filter))
	case ModeIcons:
		overlay.Markers = buildIcons(c.incidents.Filter(c.filter))
	case ModeHeat:
		overlay.HeatPoints = buildHeat(c.incidents.Filter(c.filter))
	case ModePredictions:
		overlay.Hotspots, overlay.Predictions = buildTrend(c.trend)
	}
	if overlay.Size() == 0 {
		return
	}

	c.nextID++
	overlay.ID = c.nextID
	if err := c.surface.Attach(overlay); err != nil {
		c.logger.WithError(err).WithField("mode", c.mode).Error("Failed to attach overlay")
		return
	}
	c.active = overlay
}
