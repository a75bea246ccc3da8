// Package highlight хранит короткоживущий набор "только что измененных" инцидентов.
//
// Каждый вызов MarkChanged заводит один таймер на всю пачку идентификаторов.
// Повторная отметка идентификатора, который уже ждет снятия, не продлевает окно:
// он будет снят по самому раннему таймеру.
package highlight

import (
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
)

type Tracker struct {
	clk    clock.Clock
	window time.Duration
	logger *logrus.Entry

	mu     sync.Mutex
	active map[int64]struct{}
	timers map[uint64]*clock.Timer
	nextID uint64
	closed bool
}

func NewTracker(clk clock.Clock, window time.Duration, logger *logrus.Logger) *Tracker {
	return &Tracker{
		clk:    clk,
		window: window,
		logger: logger.WithField("component", "highlight"),
		active: make(map[int64]struct{}),
		timers: make(map[uint64]*clock.Timer),
	}
}

// MarkChanged добавляет идентификаторы в набор и планирует их снятие через окно подсветки
func (t *Tracker) MarkChanged(ids ...int64) {
	if len(ids) == 0 {
		return
	}
	batch := append([]int64(nil), ids...)

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}

	for _, id := range batch {
		t.active[id] = struct{}{}
	}

	t.nextID++
	timerID := t.nextID
	t.timers[timerID] = t.clk.AfterFunc(t.window, func() {
		t.expire(timerID, batch)
	})

	t.logger.WithField("ids", batch).Debug("Incidents highlighted")
}

func (t *Tracker) expire(timerID uint64, batch []int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.timers[timerID]; !ok {
		return
	}
	delete(t.timers, timerID)
	for _, id := range batch {
		delete(t.active, id)
	}
}

// IsHighlighted сообщает, подсвечен ли инцидент
func (t *Tracker) IsHighlighted(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.active[id]
	return ok
}

// Active возвращает отсортированную копию активного набора
func (t *Tracker) Active() []int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]int64, 0, len(t.active))
	for id := range t.active {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Close останавливает все отложенные таймеры и очищает набор
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
	t.active = make(map[int64]struct{})
	t.closed = true
}
