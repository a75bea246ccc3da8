package highlight

import (
	"bytes"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

func newTestTracker(t *testing.T) (*Tracker, *clock.Mock) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	clk := clock.NewMock()
	tracker := NewTracker(clk, 5*time.Second, logger)
	t.Cleanup(tracker.Close)
	return tracker, clk
}

func TestMarkChanged_ExpiresAfterWindow(t *testing.T) {
	tracker, clk := newTestTracker(t)

	tracker.MarkChanged(7)
	assert.True(t, tracker.IsHighlighted(7))

	clk.Add(4 * time.Second)
	assert.True(t, tracker.IsHighlighted(7))

	clk.Add(time.Second)
	require.Eventually(t, func() bool { return !tracker.IsHighlighted(7) }, waitFor, tick)
}

func TestMarkChanged_RemarkDoesNotExtendWindow(t *testing.T) {
	tracker, clk := newTestTracker(t)

	tracker.MarkChanged(7)
	clk.Add(3 * time.Second)
	tracker.MarkChanged(7)
	assert.True(t, tracker.IsHighlighted(7))

	// Первое окно истекает через 5 секунд от первой отметки
	clk.Add(2 * time.Second)
	require.Eventually(t, func() bool { return !tracker.IsHighlighted(7) }, waitFor, tick)
}

func TestMarkChanged_IndependentBatches(t *testing.T) {
	tracker, clk := newTestTracker(t)

	tracker.MarkChanged(1, 2)
	clk.Add(2 * time.Second)
	tracker.MarkChanged(3)
	assert.Equal(t, []int64{1, 2, 3}, tracker.Active())

	clk.Add(3 * time.Second)
	require.Eventually(t, func() bool {
		active := tracker.Active()
		return len(active) == 1 && active[0] == 3
	}, waitFor, tick)

	clk.Add(2 * time.Second)
	require.Eventually(t, func() bool { return len(tracker.Active()) == 0 }, waitFor, tick)
}

func TestClose_StopsTimers(t *testing.T) {
	tracker, clk := newTestTracker(t)

	tracker.MarkChanged(1)
	tracker.Close()
	assert.Empty(t, tracker.Active())

	// После закрытия новые отметки игнорируются
	tracker.MarkChanged(2)
	assert.False(t, tracker.IsHighlighted(2))

	clk.Add(10 * time.Second)
	assert.Empty(t, tracker.Active())
}

func TestMarkChanged_Empty(t *testing.T) {
	tracker, _ := newTestTracker(t)
	tracker.MarkChanged()
	assert.Empty(t, tracker.Active())
}
