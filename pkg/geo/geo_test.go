package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMiles(t *testing.T) {
	tests := []struct {
		name   string
		meters float64
		want   string
	}{
		{name: "one mile", meters: 1609.34, want: "1.0 miles"},
		{name: "half mile", meters: 804.67, want: "0.5 miles"},
		{name: "two miles", meters: 3219, want: "2.0 miles"},
		{name: "zero", meters: 0, want: "0.0 miles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMiles(tt.meters))
		})
	}
}

func TestRadiusMeters(t *testing.T) {
	assert.Equal(t, 1609, RadiusMeters(1))
	assert.Equal(t, 4828, RadiusMeters(3))
	assert.Equal(t, 16093, RadiusMeters(10))
}

func TestDistance(t *testing.T) {
	a := Point{Latitude: 40.7128, Longitude: -74.0060}

	// Совпадающие точки
	assert.InDelta(t, 0, Distance(a, a), 1e-6)

	// Один градус широты ~111.19 км
	b := Point{Latitude: 41.7128, Longitude: -74.0060}
	assert.InDelta(t, 111195, Distance(a, b), 10)

	// Симметричность
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(0, 0))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.False(t, ValidCoordinate(90.1, 0))
	assert.False(t, ValidCoordinate(0, -180.5))
	assert.False(t, ValidCoordinate(math.NaN(), 0))
	assert.True(t, Point{Latitude: 51.5, Longitude: -0.12}.Valid())
}
