package maplayer

import (
	"github.com/shenikar/geo_incident_sync/internal/models"
)

// Mode - режим отображения карты
type Mode string

const (
	ModeMarkers     Mode = "markers"
	ModeIcons       Mode = "icons"
	ModeHeat        Mode = "heat"
	ModePredictions Mode = "predictions"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeMarkers, ModeIcons, ModeHeat, ModePredictions:
		return true
	}
	return false
}

const (
	colorRed   = "#ef4444"
	colorAmber = "#f59e0b"
	colorGreen = "#10b981"
	colorGray  = "#6b7280"

	defaultIcon = "📍"
)

// Overlay - один слой поверх карты. Заполнены только поля, относящиеся к его режиму.
type Overlay struct {
	ID          uint64             `json:"id"`
	Mode        Mode               `json:"mode"`
	Markers     []Marker           `json:"markers,omitempty"`
	HeatPoints  []HeatPoint        `json:"heat_points,omitempty"`
	Hotspots    []HotspotMarker    `json:"hotspots,omitempty"`
	Predictions []PredictionMarker `json:"predictions,omitempty"`
}

// Size - число точек в слое
func (o *Overlay) Size() int {
	return len(o.Markers) + len(o.HeatPoints) + len(o.Hotspots) + len(o.Predictions)
}

type Marker struct {
	IncidentID int64   `json:"incident_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Color      string  `json:"color,omitempty"`
	Icon       string  `json:"icon,omitempty"`
	Label      string  `json:"label"`
}

type HeatPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Weight    float64 `json:"weight"`
}

type HotspotMarker struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
	RiskScore float64 `json:"risk_score"`
	Color     string  `json:"color"`
	Label     string  `json:"label"`
}

type PredictionMarker struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Confidence float64 `json:"confidence"`
	Color      string  `json:"color"`
	Label      string  `json:"label"`
}

// StatusColor - цвет маркера по статусу
func StatusColor(status models.Status) string {
	switch status {
	case models.StatusOpen:
		return colorRed
	case models.StatusInProgress:
		return colorAmber
	case models.StatusResolved:
		return colorGreen
	}
	return colorGray
}

// ScoreColor - цвет по риску или уверенности: >70 красный, >40 янтарный, иначе зеленый
func ScoreColor(score float64) string {
	switch {
	case score > 70:
		return colorRed
	case score > 40:
		return colorAmber
	}
	return colorGreen
}

// HeatWeight - интенсивность точки тепловой карты по приоритету
func HeatWeight(priority models.Priority) float64 {
	switch priority {
	case models.PriorityLow:
		return 0.3
	case models.PriorityMedium:
		return 0.6
	case models.PriorityHigh:
		return 1.0
	}
	return 0.5
}

var categoryIcons = map[models.Category]string{
	models.CategoryPothole:        "🕳️",
	models.CategoryWildlife:       "🦌",
	models.CategoryStreetLightOut: "💡",
	models.CategoryDebrisTrash:    "🗑️",
	models.CategoryTrafficJam:     "🚗",
	models.CategoryCarAccident:    "🚨",
	models.CategoryBrokenDownCar:  "🚗",
	models.CategoryLaneClosure:    "🚧",
	models.CategoryPolice:         "👮",
}

// CategoryIcon - значок категории; для неизвестных категорий общий значок
func CategoryIcon(category models.Category) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return defaultIcon
}

func buildMarkers(incidents []models.Incident) []Marker {
	markers := make([]Marker, 0, len(incidents))
	for _, inc := range incidents {
		markers = append(markers, Marker{
			IncidentID: inc.ID,
			Latitude:   inc.Latitude,
			Longitude:  inc.Longitude,
			Color:      StatusColor(inc.Status),
			Label:      string(inc.Category),
		})
	}
	return markers
}

func buildIcons(incidents []models.Incident) []Marker {
	markers := make([]Marker, 0, len(incidents))
	for _, inc := range incidents {
		markers = append(markers, Marker{
			IncidentID: inc.ID,
			Latitude:   inc.Latitude,
			Longitude:  inc.Longitude,
			Icon:       CategoryIcon(inc.Category),
			Label:      string(inc.Category),
		})
	}
	return markers
}

func buildHeat(incidents []models.Incident) []HeatPoint {
	points := make([]HeatPoint, 0, len(incidents))
	for _, inc := range incidents {
		points = append(points, HeatPoint{
			Latitude:  inc.Latitude,
			Longitude: inc.Longitude,
			Weight:    HeatWeight(inc.Priority),
		})
	}
	return points
}

func buildTrend(trend *models.TrendAnalysis) ([]HotspotMarker, []PredictionMarker) {
	if trend == nil {
		return nil, nil
	}
	hotspots := make([]HotspotMarker, 0, len(trend.Hotspots))
	for _, h := range trend.Hotspots {
		hotspots = append(hotspots, HotspotMarker{
			Latitude:  h.Center.Latitude,
			Longitude: h.Center.Longitude,
			RadiusKm:  h.RadiusKm,
			RiskScore: h.RiskScore,
			Color:     ScoreColor(h.RiskScore),
			Label:     h.LocationName,
		})
	}
	predictions := make([]PredictionMarker, 0, len(trend.Predictions))
	for _, p := range trend.Predictions {
		predictions = append(predictions, PredictionMarker{
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			Confidence: p.Confidence,
			Color:      ScoreColor(p.Confidence),
			Label:      p.PredictedCategory,
		})
	}
	return hotspots, predictions
}
