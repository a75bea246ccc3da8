package store

import (
	"bytes"
	"testing"

	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/shenikar/geo_incident_sync/internal/store/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestStore создает хранилище с мокированным трекером подсветки
func newTestStore(t *testing.T) (*Store, *mocks.MockHighlightSink) {
	t.Helper()
	ctrl := gomock.NewController(t)
	highlights := mocks.NewMockHighlightSink(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	s, err := New(16, highlights, logger)
	require.NoError(t, err)
	return s, highlights
}

func incident(id int64, priority models.Priority, status models.Status) models.Incident {
	return models.Incident{
		ID:        id,
		Category:  models.CategoryPothole,
		Priority:  priority,
		Status:    status,
		Latitude:  40.0,
		Longitude: -74.0,
	}
}

func TestUpsert_SizeProperty(t *testing.T) {
	s, _ := newTestStore(t)

	s.Upsert(incident(1, models.PriorityLow, models.StatusOpen))
	assert.Equal(t, 1, s.Len())

	// Тот же id не увеличивает размер
	s.Upsert(incident(1, models.PriorityLow, models.StatusOpen))
	assert.Equal(t, 1, s.Len())

	s.Upsert(incident(2, models.PriorityLow, models.StatusOpen))
	assert.Equal(t, 2, s.Len())
}

func TestUpsert_ReplacesInPlace(t *testing.T) {
	s, _ := newTestStore(t)
	s.ReplaceAll([]models.Incident{
		incident(1, models.PriorityLow, models.StatusOpen),
		incident(2, models.PriorityLow, models.StatusOpen),
		incident(3, models.PriorityLow, models.StatusOpen),
	})

	updated := incident(2, models.PriorityLow, models.StatusOpen)
	updated.Description = "bigger pothole"
	s.Upsert(updated)

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, int64(2), snapshot[1].ID)
	assert.Equal(t, "bigger pothole", snapshot[1].Description)
}

func TestUpsert_StatusChangeHighlights(t *testing.T) {
	s, highlights := newTestStore(t)
	s.Upsert(incident(7, models.PriorityLow, models.StatusOpen))

	highlights.EXPECT().MarkChanged(int64(7)).Times(1)

	s.Upsert(incident(7, models.PriorityLow, models.StatusResolved))
}

func TestRemove_Idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	s.Upsert(incident(1, models.PriorityLow, models.StatusOpen))

	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1))
	assert.Equal(t, 0, s.Len())

	// Удаление несуществующего id - не ошибка
	assert.False(t, s.Remove(42))
}

func TestRemove_ReindexesFollowingEntries(t *testing.T) {
	s, _ := newTestStore(t)
	s.ReplaceAll([]models.Incident{
		incident(1, models.PriorityLow, models.StatusOpen),
		incident(2, models.PriorityLow, models.StatusOpen),
		incident(3, models.PriorityLow, models.StatusOpen),
	})

	s.Remove(1)
	got, ok := s.Get(3)
	require.True(t, ok)
	assert.Equal(t, int64(3), got.ID)

	s.Upsert(incident(3, models.PriorityLow, models.StatusOpen))
	assert.Equal(t, 2, s.Len())
}

func TestCreateThenDelete_LeavesAbsent(t *testing.T) {
	s, _ := newTestStore(t)

	s.Upsert(incident(5, models.PriorityHigh, models.StatusOpen))
	s.Remove(5)

	_, ok := s.Get(5)
	assert.False(t, ok)
}

func TestDeleteThenCreate_LeavesAbsent(t *testing.T) {
	s, _ := newTestStore(t)

	s.Remove(5)
	s.Upsert(incident(5, models.PriorityHigh, models.StatusOpen))

	_, ok := s.Get(5)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestUpdate_OnlyExisting(t *testing.T) {
	s, _ := newTestStore(t)

	assert.False(t, s.Update(incident(9, models.PriorityLow, models.StatusOpen)))
	assert.Equal(t, 0, s.Len())

	s.Upsert(incident(9, models.PriorityLow, models.StatusOpen))
	updated := incident(9, models.PriorityLow, models.StatusOpen)
	updated.Description = "still there"
	assert.True(t, s.Update(updated))

	got, _ := s.Get(9)
	assert.Equal(t, "still there", got.Description)
}

func TestReplaceAll_DeduplicatesAndSkipsDeleted(t *testing.T) {
	s, _ := newTestStore(t)
	s.Remove(3)

	first := incident(1, models.PriorityLow, models.StatusOpen)
	dup := incident(1, models.PriorityHigh, models.StatusOpen)
	s.ReplaceAll([]models.Incident{first, incident(2, models.PriorityLow, models.StatusOpen), dup, incident(3, models.PriorityLow, models.StatusOpen)})

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, int64(1), snapshot[0].ID)
	assert.Equal(t, models.PriorityHigh, snapshot[0].Priority)
	assert.Equal(t, int64(2), snapshot[1].ID)
}

func TestApplyBatch_ReturnsChangedIDs(t *testing.T) {
	s, highlights := newTestStore(t)
	s.ReplaceAll([]models.Incident{
		incident(1, models.PriorityLow, models.StatusOpen),
		incident(2, models.PriorityLow, models.StatusOpen),
		incident(3, models.PriorityLow, models.StatusOpen),
	})

	highlights.EXPECT().MarkChanged(int64(1), int64(3)).Times(1)

	renamed := incident(2, models.PriorityLow, models.StatusOpen)
	renamed.Description = "only description changed"
	changed := s.ApplyBatch(s.Revision(), []models.Incident{
		incident(1, models.PriorityHigh, models.StatusOpen),
		renamed,
		incident(3, models.PriorityLow, models.StatusInProgress),
		incident(4, models.PriorityLow, models.StatusOpen),
	})

	assert.Equal(t, []int64{1, 3}, changed)
	assert.Equal(t, 4, s.Len())
}

func TestApplyBatch_NoChanges(t *testing.T) {
	s, highlights := newTestStore(t)
	s.ReplaceAll([]models.Incident{incident(1, models.PriorityLow, models.StatusOpen)})

	highlights.EXPECT().MarkChanged(gomock.Any()).Times(0)

	changed := s.ApplyBatch(s.Revision(), []models.Incident{incident(1, models.PriorityLow, models.StatusOpen)})
	assert.Empty(t, changed)
}

func TestApplyBatch_RemovedEntriesCanReturn(t *testing.T) {
	s, _ := newTestStore(t)
	s.ReplaceAll([]models.Incident{incident(1, models.PriorityLow, models.StatusOpen)})

	s.ApplyBatch(s.Revision(), nil)
	assert.Equal(t, 0, s.Len())

	// Запись, исчезнувшая из полного списка, не считается удаленной навсегда
	s.Upsert(incident(1, models.PriorityLow, models.StatusOpen))
	assert.Equal(t, 1, s.Len())
}

func TestFilter(t *testing.T) {
	s, _ := newTestStore(t)
	wildlife := incident(2, models.PriorityHigh, models.StatusOpen)
	wildlife.Category = models.CategoryWildlife
	s.ReplaceAll([]models.Incident{incident(1, models.PriorityLow, models.StatusOpen), wildlife})

	all := s.Filter(models.IncidentFilter{Category: models.FilterAll})
	assert.Len(t, all, 2)

	high := s.Filter(models.IncidentFilter{Priority: "High"})
	require.Len(t, high, 1)
	assert.Equal(t, int64(2), high[0].ID)

	none := s.Filter(models.IncidentFilter{Status: "Resolved"})
	assert.Empty(t, none)
}

func TestSubscribe_ReceivesChanges(t *testing.T) {
	s, _ := newTestStore(t)
	var changes []Change
	s.Subscribe(func(c Change) { changes = append(changes, c) })

	s.Upsert(incident(1, models.PriorityLow, models.StatusOpen))
	s.Remove(1)
	s.Remove(1)

	require.Len(t, changes, 2)
	assert.Equal(t, OpUpsert, changes[0].Op)
	assert.Equal(t, OpRemove, changes[1].Op)
	assert.Equal(t, []int64{1}, changes[1].IDs)
}

func TestSubscribe_ListenerCanReadStore(t *testing.T) {
	s, _ := newTestStore(t)
	var seen int
	s.Subscribe(func(Change) { seen = s.Len() })

	s.Upsert(incident(1, models.PriorityLow, models.StatusOpen))
	assert.Equal(t, 1, seen)
}

func TestApplyBatch_KeepsChangesAppliedAfterRevision(t *testing.T) {
	s, highlights := newTestStore(t)
	s.ReplaceAll([]models.Incident{
		incident(1, models.PriorityLow, models.StatusOpen),
		incident(3, models.PriorityLow, models.StatusOpen),
	})
	since := s.Revision()

	// Кадры, пришедшие, пока запрашивался полный список
	highlights.EXPECT().MarkChanged(int64(3)).Times(1)
	s.Upsert(incident(2, models.PriorityLow, models.StatusOpen))
	require.True(t, s.Update(incident(3, models.PriorityLow, models.StatusResolved)))
	s.Remove(4)

	changed := s.ApplyBatch(since, []models.Incident{
		incident(1, models.PriorityLow, models.StatusOpen),
		incident(3, models.PriorityLow, models.StatusOpen),
		incident(4, models.PriorityLow, models.StatusOpen),
	})

	assert.Empty(t, changed)
	assert.Equal(t, 3, s.Len())
	_, ok := s.Get(2)
	assert.True(t, ok)
	got, ok := s.Get(3)
	require.True(t, ok)
	assert.Equal(t, models.StatusResolved, got.Status)
	_, ok = s.Get(4)
	assert.False(t, ok)
}
