package location

import (
	"bytes"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/shenikar/geo_incident_sync/pkg/geo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker() (*Tracker, *clock.Mock) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	clk := clock.NewMock()
	return NewTracker(clk, logger), clk
}

func TestTracker_Update(t *testing.T) {
	tracker, clk := newTestTracker()
	clk.Add(time.Minute)

	var notified []geo.Point
	tracker.OnChange(func(p geo.Point) { notified = append(notified, p) })

	_, ok := tracker.Current()
	assert.False(t, ok)

	p := geo.Point{Latitude: 40.7, Longitude: -74.0}
	require.NoError(t, tracker.Update(p, 12))

	current, ok := tracker.Current()
	require.True(t, ok)
	assert.Equal(t, p, current)
	assert.Equal(t, []geo.Point{p}, notified)

	fix, ok := tracker.Fix()
	require.True(t, ok)
	assert.Equal(t, clk.Now(), fix.UpdatedAt)
	assert.InDelta(t, 12, fix.Accuracy, 1e-9)
}

func TestTracker_UpdateRejectsInvalid(t *testing.T) {
	tracker, _ := newTestTracker()

	err := tracker.Update(geo.Point{Latitude: 91, Longitude: 0}, 0)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, ok := tracker.Current()
	assert.False(t, ok)
}

func TestTracker_FailKeepsLastFix(t *testing.T) {
	tracker, _ := newTestTracker()
	require.NoError(t, tracker.Update(geo.Point{Latitude: 1, Longitude: 2}, 5))

	var reasons []string
	tracker.OnFailure(func(reason string) { reasons = append(reasons, reason) })
	tracker.Fail("permission denied")

	assert.Equal(t, []string{"permission denied"}, reasons)
	_, ok := tracker.Current()
	assert.True(t, ok)

	tracker.Clear()
	_, ok = tracker.Current()
	assert.False(t, ok)
}
