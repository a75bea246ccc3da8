package maplayer

import (
	"testing"

	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status models.Status
		want   string
	}{
		{models.StatusOpen, "#ef4444"},
		{models.StatusInProgress, "#f59e0b"},
		{models.StatusResolved, "#10b981"},
		{models.Status("Archived"), "#6b7280"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusColor(tt.status))
		})
	}
}

func TestScoreColor_Thresholds(t *testing.T) {
	assert.Equal(t, colorRed, ScoreColor(85))
	assert.Equal(t, colorAmber, ScoreColor(70)) // граница не включается
	assert.Equal(t, colorAmber, ScoreColor(55))
	assert.Equal(t, colorGreen, ScoreColor(40))
	assert.Equal(t, colorGreen, ScoreColor(0))
}

func TestHeatWeight(t *testing.T) {
	assert.Equal(t, 0.3, HeatWeight(models.PriorityLow))
	assert.Equal(t, 0.6, HeatWeight(models.PriorityMedium))
	assert.Equal(t, 1.0, HeatWeight(models.PriorityHigh))
	assert.Equal(t, 0.5, HeatWeight(models.PriorityCritical))
	assert.Equal(t, 0.5, HeatWeight(""))
}

func TestCategoryIcon_Fallback(t *testing.T) {
	for _, c := range models.Categories {
		assert.NotEqual(t, defaultIcon, CategoryIcon(c), "category %s", c)
	}
	assert.Equal(t, defaultIcon, CategoryIcon("Meteor"))
}

func TestBuildTrend(t *testing.T) {
	hotspots, predictions := buildTrend(&models.TrendAnalysis{
		Hotspots: []models.Hotspot{
			{Center: models.HotspotCenter{Latitude: 40.7, Longitude: -74.0}, LocationName: "Downtown", RiskScore: 82, RadiusKm: 1.5},
		},
		Predictions: []models.Prediction{
			{Latitude: 40.71, Longitude: -74.01, PredictedCategory: "Pothole", Confidence: 45},
			{Latitude: 40.72, Longitude: -74.02, PredictedCategory: "Traffic Jam", Confidence: 12},
		},
	})

	require.Len(t, hotspots, 1)
	assert.Equal(t, colorRed, hotspots[0].Color)
	assert.Equal(t, 1.5, hotspots[0].RadiusKm)
	assert.Equal(t, "Downtown", hotspots[0].Label)

	require.Len(t, predictions, 2)
	assert.Equal(t, colorAmber, predictions[0].Color)
	assert.Equal(t, colorGreen, predictions[1].Color)

	hotspots, predictions = buildTrend(nil)
	assert.Empty(t, hotspots)
	assert.Empty(t, predictions)
}

func TestCanvas_DetachMissing(t *testing.T) {
	c := NewCanvas()
	require.NoError(t, c.Attach(&Overlay{ID: 2, Mode: ModeHeat}))
	require.NoError(t, c.Attach(&Overlay{ID: 1, Mode: ModeMarkers}))

	layers := c.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, uint64(1), layers[0].ID)

	require.NoError(t, c.Detach(1))
	assert.ErrorIs(t, c.Detach(1), ErrLayerNotAttached)
	assert.Len(t, c.Layers(), 1)
}
