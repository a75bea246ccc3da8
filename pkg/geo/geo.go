package geo

import (
	"math"
	"strconv"
)

const (
	// EarthRadiusMeters - средний радиус Земли
	EarthRadiusMeters = 6371000.0

	metersToMiles = 0.000621371
	milesToMeters = 1609.34
)

// Point - координата в градусах WGS84
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid проверяет, что координата лежит в допустимых пределах
func (p Point) Valid() bool {
	return ValidCoordinate(p.Latitude, p.Longitude)
}

// ValidCoordinate проверяет широту и долготу
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Distance возвращает расстояние по большому кругу между двумя точками в метрах (формула гаверсинусов)
func Distance(a, b Point) float64 {
	dLat := degreesToRadians(b.Latitude - a.Latitude)
	dLon := degreesToRadians(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(a.Latitude))*math.Cos(degreesToRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMeters * c
}

func MetersToMiles(meters float64) float64 {
	return meters * metersToMiles
}

func MilesToMeters(miles float64) float64 {
	return miles * milesToMeters
}

// RadiusMeters переводит радиус в милях в целые метры
func RadiusMeters(miles float64) int {
	return int(math.Round(MilesToMeters(miles)))
}

// FormatMiles форматирует расстояние в метрах как мили с одним знаком после запятой, например "2.0 miles"
func FormatMiles(meters float64) string {
	return strconv.FormatFloat(MetersToMiles(meters), 'f', 1, 64) + " miles"
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
