package models

import "encoding/json"

// TrendAnalysis - ответ сервиса анализа трендов
type TrendAnalysis struct {
	Hotspots           []Hotspot       `json:"hotspots"`
	Predictions        []Prediction    `json:"predictions"`
	TotalAnalyzed      int             `json:"total_analyzed"`
	AnalysisPeriodDays int             `json:"analysis_period_days"`
	AIModelStatus      string          `json:"ai_model_status,omitempty"`
	MLMetrics          json.RawMessage `json:"ml_metrics,omitempty"`
	AIInsights         json.RawMessage `json:"ai_insights,omitempty"`
}

// Hotspot - кластер инцидентов с оценкой риска 0..100
type Hotspot struct {
	Center             HotspotCenter   `json:"center"`
	LocationName       string          `json:"location_name"`
	IncidentCount      int             `json:"incident_count"`
	MostCommonCategory string          `json:"most_common_category"`
	MostCommonPriority string          `json:"most_common_priority"`
	RiskScore          float64         `json:"risk_score"`
	RadiusKm           float64         `json:"radius_km"`
	AIInsights         json.RawMessage `json:"ai_insights,omitempty"`
}

type HotspotCenter struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Prediction - прогноз вероятного инцидента с уверенностью 0..100
type Prediction struct {
	Latitude          float64         `json:"latitude"`
	Longitude         float64         `json:"longitude"`
	LocationName      string          `json:"location_name"`
	PredictedCategory string          `json:"predicted_category"`
	PredictedPriority string          `json:"predicted_priority"`
	Confidence        float64         `json:"confidence"`
	HotspotID         int             `json:"hotspot_id"`
	PredictionFactors json.RawMessage `json:"prediction_factors,omitempty"`
}
