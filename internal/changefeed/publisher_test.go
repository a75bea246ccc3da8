package changefeed

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/shenikar/geo_incident_sync/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *recordingWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.msgs)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestMessages_KeyedPerIncident(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	msgs := Messages(store.Change{
		Op:      store.OpBatch,
		IDs:     []int64{1, 2},
		Records: []models.Incident{{ID: 1, Status: models.StatusOpen}, {ID: 2, Status: models.StatusResolved}},
	}, at)
	require.Len(t, msgs, 2)
	assert.Equal(t, "1", string(msgs[0].Key))

	var event Event
	require.NoError(t, json.Unmarshal(msgs[1].Value, &event))
	assert.Equal(t, store.OpBatch, event.Op)
	require.NotNil(t, event.Incident)
	assert.Equal(t, models.StatusResolved, event.Incident.Status)
}

func TestMessages_RemoveHasNoRecord(t *testing.T) {
	msgs := Messages(store.Change{Op: store.OpRemove, IDs: []int64{5}}, time.Now())
	require.Len(t, msgs, 1)

	var event Event
	require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
	assert.Equal(t, int64(5), event.IncidentID)
	assert.Nil(t, event.Incident)
}

func TestMessages_SkipsProvisional(t *testing.T) {
	assert.Empty(t, Messages(store.Change{Op: store.OpProvision, IDs: []int64{-1}}, time.Now()))
	assert.Empty(t, Messages(store.Change{Op: store.OpRollback, IDs: []int64{-1}}, time.Now()))
}

func TestPublisher_DeliversAndCloses(t *testing.T) {
	w := &recordingWriter{}
	p := NewPublisher(w, 8, quietLogger())
	p.Start(context.Background())

	p.Publish(store.Change{Op: store.OpUpsert, IDs: []int64{1}, Records: []models.Incident{{ID: 1}}})
	p.Publish(store.Change{Op: store.OpRemove, IDs: []int64{2}})

	require.Eventually(t, func() bool { return w.count() == 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, p.Close())
	assert.True(t, w.closed)

	// После закрытия изменения игнорируются
	p.Publish(store.Change{Op: store.OpRemove, IDs: []int64{3}})
	assert.Equal(t, 2, w.count())
}

func TestPublisher_DropsWhenFull(t *testing.T) {
	w := &recordingWriter{}
	p := NewPublisher(w, 1, quietLogger())

	// Воркер не запущен, второе изменение не помещается в буфер
	p.Publish(store.Change{Op: store.OpRemove, IDs: []int64{1}})
	p.Publish(store.Change{Op: store.OpRemove, IDs: []int64{2}})
	assert.Len(t, p.queue, 1)
	require.NoError(t, p.Close())
}
