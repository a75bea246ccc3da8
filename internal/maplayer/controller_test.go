package maplayer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/geo_incident_sync/internal/maplayer"
	"github.com/shenikar/geo_incident_sync/internal/maplayer/mocks"
	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

// staticIncidents - неизменяемый источник инцидентов
type staticIncidents []models.Incident

func (s staticIncidents) Filter(f models.IncidentFilter) []models.Incident {
	var out []models.Incident
	for _, inc := range s {
		if f.Match(inc) {
			out = append(out, inc)
		}
	}
	return out
}

// gatedTrends отдает результат только после закрытия release
type gatedTrends struct {
	release chan struct{}
	trend   *models.TrendAnalysis
	err     error
}

func (g *gatedTrends) TrendAnalysis(ctx context.Context, _ string) (*models.TrendAnalysis, error) {
	select {
	case <-g.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return g.trend, g.err
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func sampleIncidents() staticIncidents {
	return staticIncidents{
		{ID: 1, Category: models.CategoryPothole, Priority: models.PriorityLow, Status: models.StatusOpen, Latitude: 40.1, Longitude: -74.1},
		{ID: 2, Category: models.CategoryPolice, Priority: models.PriorityHigh, Status: models.StatusResolved, Latitude: 40.2, Longitude: -74.2},
	}
}

func sampleTrend() *models.TrendAnalysis {
	return &models.TrendAnalysis{
		Hotspots: []models.Hotspot{
			{Center: models.HotspotCenter{Latitude: 40.15, Longitude: -74.15}, LocationName: "Midtown", RiskScore: 75, RadiusKm: 2},
		},
		Predictions: []models.Prediction{
			{Latitude: 40.16, Longitude: -74.16, PredictedCategory: "Pothole", Confidence: 60},
		},
	}
}

func TestController_HeatToPredictionsDisposesOnceBeforeFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)
	trends := mocks.NewMockTrendSource(ctrl)

	c := maplayer.NewController(surface, sampleIncidents(), trends, quietLogger())

	gomock.InOrder(
		surface.EXPECT().Attach(gomock.Any()).DoAndReturn(func(o *maplayer.Overlay) error {
			assert.Equal(t, maplayer.ModeHeat, o.Mode)
			assert.Equal(t, uint64(1), o.ID)
			return nil
		}),
		surface.EXPECT().Detach(uint64(1)).Return(nil).Times(1),
		trends.EXPECT().TrendAnalysis(gomock.Any(), "").Return(sampleTrend(), nil),
		surface.EXPECT().Attach(gomock.Any()).DoAndReturn(func(o *maplayer.Overlay) error {
			assert.Equal(t, maplayer.ModePredictions, o.Mode)
			assert.Len(t, o.Hotspots, 1)
			assert.Len(t, o.Predictions, 1)
			return nil
		}),
		surface.EXPECT().Detach(uint64(2)).Return(nil),
	)

	require.NoError(t, c.SetMode(maplayer.ModeHeat))
	require.NoError(t, c.SetMode(maplayer.ModePredictions))

	require.Eventually(t, func() bool {
		v := c.View()
		return !v.Loading && v.Overlay != nil
	}, waitFor, tick)

	c.Close()
}

func TestController_EmptySetCreatesNoOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)
	trends := mocks.NewMockTrendSource(ctrl)

	// Attach не ожидается
	c := maplayer.NewController(surface, staticIncidents{}, trends, quietLogger())
	c.Refresh()
	require.NoError(t, c.SetMode(maplayer.ModeHeat))
	require.NoError(t, c.SetMode(maplayer.ModeIcons))

	assert.Nil(t, c.View().Overlay)
	c.Close()
}

func TestController_TolerantOfMissingLayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockSurface(ctrl)
	trends := mocks.NewMockTrendSource(ctrl)

	c := maplayer.NewController(surface, sampleIncidents(), trends, quietLogger())

	gomock.InOrder(
		surface.EXPECT().Attach(gomock.Any()).Return(nil),
		surface.EXPECT().Detach(uint64(1)).Return(maplayer.ErrLayerNotAttached),
		surface.EXPECT().Attach(gomock.Any()).Return(nil),
		surface.EXPECT().Detach(uint64(2)).Return(nil),
	)

	c.Refresh()
	require.NoError(t, c.SetMode(maplayer.ModeIcons))

	v := c.View()
	require.NotNil(t, v.Overlay)
	assert.Equal(t, maplayer.ModeIcons, v.Overlay.Mode)
	c.Close()
}

func TestController_SameModeIsNoop(t *testing.T) {
	canvas := maplayer.NewCanvas()
	c := maplayer.NewController(canvas, sampleIncidents(), &gatedTrends{release: make(chan struct{})}, quietLogger())
	defer c.Close()

	c.Refresh()
	first := c.View().Overlay
	require.NotNil(t, first)

	require.NoError(t, c.SetMode(maplayer.ModeMarkers))
	assert.Same(t, first, c.View().Overlay)
	assert.Len(t, canvas.Layers(), 1)
}

func TestController_UnknownMode(t *testing.T) {
	c := maplayer.NewController(maplayer.NewCanvas(), sampleIncidents(), &gatedTrends{release: make(chan struct{})}, quietLogger())
	defer c.Close()

	err := c.SetMode("satellite")
	assert.ErrorIs(t, err, maplayer.ErrUnknownMode)
	assert.Equal(t, maplayer.ModeMarkers, c.View().Mode)
}

func TestController_SingleLayerAcrossModes(t *testing.T) {
	canvas := maplayer.NewCanvas()
	trends := &gatedTrends{release: make(chan struct{}), trend: sampleTrend()}
	close(trends.release)

	c := maplayer.NewController(canvas, sampleIncidents(), trends, quietLogger())
	c.Refresh()

	for _, mode := range []maplayer.Mode{maplayer.ModeIcons, maplayer.ModeHeat, maplayer.ModeMarkers, maplayer.ModeHeat} {
		require.NoError(t, c.SetMode(mode))
		layers := canvas.Layers()
		require.Len(t, layers, 1, "mode %s", mode)
		assert.Equal(t, mode, layers[0].Mode)
	}

	require.NoError(t, c.SetMode(maplayer.ModePredictions))
	require.Eventually(t, func() bool {
		layers := canvas.Layers()
		return len(layers) == 1 && layers[0].Mode == maplayer.ModePredictions
	}, waitFor, tick)

	c.Close()
	assert.Empty(t, canvas.Layers())
}

func TestController_HeatWeightsAndFilter(t *testing.T) {
	canvas := maplayer.NewCanvas()
	c := maplayer.NewController(canvas, sampleIncidents(), &gatedTrends{release: make(chan struct{})}, quietLogger())
	defer c.Close()

	require.NoError(t, c.SetMode(maplayer.ModeHeat))
	v := c.View()
	require.NotNil(t, v.Overlay)
	require.Len(t, v.Overlay.HeatPoints, 2)
	assert.Equal(t, 0.3, v.Overlay.HeatPoints[0].Weight)
	assert.Equal(t, 1.0, v.Overlay.HeatPoints[1].Weight)

	c.SetFilter(models.IncidentFilter{Category: string(models.CategoryPolice)})
	v = c.View()
	require.NotNil(t, v.Overlay)
	require.Len(t, v.Overlay.HeatPoints, 1)
	assert.Len(t, canvas.Layers(), 1)

	c.SetFilter(models.IncidentFilter{Category: string(models.CategoryWildlife)})
	assert.Nil(t, c.View().Overlay)
	assert.Empty(t, canvas.Layers())
}

func TestController_LoadingWhileFetching(t *testing.T) {
	canvas := maplayer.NewCanvas()
	trends := &gatedTrends{release: make(chan struct{}), trend: sampleTrend()}
	c := maplayer.NewController(canvas, sampleIncidents(), trends, quietLogger())
	defer c.Close()

	require.NoError(t, c.SetMode(maplayer.ModePredictions))
	v := c.View()
	assert.True(t, v.Loading)
	assert.Nil(t, v.Overlay)

	close(trends.release)
	require.Eventually(t, func() bool { return !c.View().Loading }, waitFor, tick)

	v = c.View()
	require.NotNil(t, v.Overlay)
	assert.Equal(t, "#ef4444", v.Overlay.Hotspots[0].Color)
	assert.Equal(t, "#f59e0b", v.Overlay.Predictions[0].Color)
}

func TestController_FailedRefetchKeepsPrior(t *testing.T) {
	ctrl := gomock.NewController(t)
	trends := mocks.NewMockTrendSource(ctrl)
	canvas := maplayer.NewCanvas()

	gomock.InOrder(
		trends.EXPECT().TrendAnalysis(gomock.Any(), "").Return(sampleTrend(), nil),
		trends.EXPECT().TrendAnalysis(gomock.Any(), "").Return(nil, errors.New("service unavailable")),
	)

	c := maplayer.NewController(canvas, sampleIncidents(), trends, quietLogger())
	defer c.Close()

	require.NoError(t, c.SetMode(maplayer.ModePredictions))
	require.Eventually(t, func() bool { return !c.View().Loading && c.View().Overlay != nil }, waitFor, tick)

	require.NoError(t, c.SetMode(maplayer.ModeMarkers))
	require.NoError(t, c.SetMode(maplayer.ModePredictions))

	// Прошлые прогнозы отображаются сразу, пока идет повторная загрузка
	require.NotNil(t, c.View().Overlay)

	require.Eventually(t, func() bool { return !c.View().Loading }, waitFor, tick)
	v := c.View()
	require.NotNil(t, v.Overlay)
	assert.Equal(t, maplayer.ModePredictions, v.Overlay.Mode)
	assert.Len(t, v.Overlay.Predictions, 1)
	assert.Equal(t, "service unavailable", v.TrendError)
	assert.Len(t, canvas.Layers(), 1)
}

func TestController_RefreshIgnoredInPredictions(t *testing.T) {
	canvas := maplayer.NewCanvas()
	trends := &gatedTrends{release: make(chan struct{}), trend: sampleTrend()}
	close(trends.release)
	c := maplayer.NewController(canvas, sampleIncidents(), trends, quietLogger())
	defer c.Close()

	require.NoError(t, c.SetMode(maplayer.ModePredictions))
	require.Eventually(t, func() bool { return c.View().Overlay != nil }, waitFor, tick)
	before := c.View().Overlay

	c.Refresh()
	c.SetFilter(models.IncidentFilter{Status: string(models.StatusOpen)})
	assert.Same(t, before, c.View().Overlay)
	assert.Equal(t, string(models.StatusOpen), c.View().Filter.Status)
}
