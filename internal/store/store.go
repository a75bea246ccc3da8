// Package store держит авторитетный набор инцидентов без дубликатов.
//
// Каждая операция изменения выполняется под одним захватом блокировки, поэтому кадр
// либо применяется целиком, либо не применяется вовсе. Подписчики уведомляются уже
// после снятия блокировки и могут свободно читать хранилище.
//
// Каждая запись в хранилище получает номер ревизии. По ревизиям двухфазные изменения
// и полная синхронизация узнают, что запись успела обновиться кадром с сервера.
package store

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shenikar/geo_incident_sync/internal/models"
	"github.com/sirupsen/logrus"
)

// HighlightSink получает идентификаторы инцидентов, у которых сменился приоритет или статус
type HighlightSink interface {
	MarkChanged(ids ...int64)
}

// Op - вид изменения хранилища
type Op string

const (
	OpReplaceAll Op = "replace_all"
	OpUpsert     Op = "upsert"
	OpRemove     Op = "remove"
	OpBatch      Op = "batch"
	OpCommit     Op = "commit"
	OpRollback   Op = "rollback"
	OpProvision  Op = "provisional"
)

// Change описывает одно примененное изменение. Records содержит итоговое состояние
// затронутых записей; для удаленных записей его нет.
type Change struct {
	Op      Op
	IDs     []int64
	Records []models.Incident
}

type Listener func(Change)

type Store struct {
	logger     *logrus.Entry
	highlights HighlightSink

	mu         sync.RWMutex
	items      []models.Incident
	index      map[int64]int
	tombstones *lru.Cache[int64, struct{}]
	revs       map[int64]uint64
	seq        uint64
	nextTempID int64
	listeners  []Listener
}

// New создает хранилище. tombstoneCapacity ограничивает число запоминаемых удаленных идентификаторов.
func New(tombstoneCapacity int, highlights HighlightSink, logger *logrus.Logger) (*Store, error) {
	tombstones, err := lru.New[int64, struct{}](tombstoneCapacity)
	if err != nil {
		return nil, fmt.Errorf("store: could not create tombstone cache: %w", err)
	}
	return &Store{
		logger:     logger.WithField("component", "store"),
		highlights: highlights,
		index:      make(map[int64]int),
		revs:       make(map[int64]uint64),
		tombstones: tombstones,
	}, nil
}

// Subscribe регистрирует подписчика на изменения
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// ReplaceAll заменяет содержимое хранилища результатом начальной загрузки
func (s *Store) ReplaceAll(records []models.Incident) {
	s.mu.Lock()
	s.rebuild(records)
	change := Change{Op: OpReplaceAll, IDs: s.idsLocked(), Records: s.copyLocked()}
	listeners := s.listeners
	s.mu.Unlock()

	s.logger.WithField("count", len(change.IDs)).Info("Incident store replaced")
	notify(listeners, change)
}

// Upsert заменяет запись с тем же id на месте или добавляет новую в конец.
// Записи с ранее удаленным id игнорируются.
func (s *Store) Upsert(record models.Incident) {
	s.mu.Lock()
	if s.isTombstoned(record.ID) {
		s.mu.Unlock()
		s.logger.WithField("incident_id", record.ID).Debug("Ignoring upsert of deleted incident")
		return
	}
	changed := s.putLocked(record)
	listeners := s.listeners
	s.mu.Unlock()

	s.highlight(changed)
	notify(listeners, Change{Op: OpUpsert, IDs: []int64{record.ID}, Records: []models.Incident{record}})
}

// Update заменяет существующую запись и возвращает false, если записи с таким id нет
func (s *Store) Update(record models.Incident) bool {
	s.mu.Lock()
	if _, ok := s.index[record.ID]; !ok {
		s.mu.Unlock()
		return false
	}
	changed := s.putLocked(record)
	listeners := s.listeners
	s.mu.Unlock()

	s.highlight(changed)
	notify(listeners, Change{Op: OpUpsert, IDs: []int64{record.ID}, Records: []models.Incident{record}})
	return true
}

// Remove удаляет запись, если она есть, и запоминает id как удаленный.
// Повторное удаление ничего не меняет.
func (s *Store) Remove(id int64) bool {
	s.mu.Lock()
	s.tombstones.Add(id, struct{}{})
	removed := s.deleteLocked(id)
	listeners := s.listeners
	s.mu.Unlock()

	if removed {
		notify(listeners, Change{Op: OpRemove, IDs: []int64{id}})
	}
	return removed
}

// Revision возвращает номер последней записи. Снимается до запроса полного списка
// и передается в ApplyBatch.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

// ApplyBatch заменяет содержимое полным списком и возвращает id, у которых изменился приоритет или статус.
// Записи, измененные после ревизии since, новее списка и сохраняются как есть.
func (s *Store) ApplyBatch(since uint64, records []models.Incident) []int64 {
	s.mu.Lock()
	prior := make(map[int64]models.Incident, len(s.items))
	for _, item := range s.items {
		prior[item.ID] = item
	}
	fresh := s.writtenSinceLocked(since)
	s.rebuild(records)
	for _, item := range fresh {
		s.keepLocked(item.record, item.rev)
	}

	var changed []int64
	for _, item := range s.items {
		if old, ok := prior[item.ID]; ok && significantChange(old, item) {
			changed = append(changed, item.ID)
		}
	}
	change := Change{Op: OpBatch, IDs: s.idsLocked(), Records: s.copyLocked()}
	listeners := s.listeners
	s.mu.Unlock()

	s.highlight(changed)
	notify(listeners, change)
	return changed
}

// Get возвращает копию записи
func (s *Store) Get(id int64) (models.Incident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[id]
	if !ok {
		return models.Incident{}, false
	}
	return s.items[pos], true
}

// Snapshot возвращает копию всех записей в порядке хранения
func (s *Store) Snapshot() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// Filter возвращает записи, подходящие под фильтр
func (s *Store) Filter(f models.IncidentFilter) []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Incident, 0, len(s.items))
	for _, item := range s.items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// rebuild заменяет содержимое, отбрасывая удаленные id и дубликаты (побеждает последняя версия на позиции первой)
func (s *Store) rebuild(records []models.Incident) {
	s.items = make([]models.Incident, 0, len(records))
	s.index = make(map[int64]int, len(records))
	s.revs = make(map[int64]uint64, len(records))
	for _, record := range records {
		if s.isTombstoned(record.ID) {
			continue
		}
		s.bumpLocked(record.ID)
		if pos, ok := s.index[record.ID]; ok {
			s.items[pos] = record
			continue
		}
		s.index[record.ID] = len(s.items)
		s.items = append(s.items, record)
	}
}

type revisioned struct {
	record models.Incident
	rev    uint64
}

// writtenSinceLocked возвращает записи, измененные после ревизии since, в порядке хранения
func (s *Store) writtenSinceLocked(since uint64) []revisioned {
	var out []revisioned
	for _, item := range s.items {
		if rev := s.revs[item.ID]; rev > since {
			out = append(out, revisioned{record: item, rev: rev})
		}
	}
	return out
}

// keepLocked возвращает запись в хранилище с ее прежней ревизией
func (s *Store) keepLocked(record models.Incident, rev uint64) {
	if s.isTombstoned(record.ID) {
		return
	}
	if pos, ok := s.index[record.ID]; ok {
		s.items[pos] = record
	} else {
		s.index[record.ID] = len(s.items)
		s.items = append(s.items, record)
	}
	s.revs[record.ID] = rev
}

func (s *Store) bumpLocked(id int64) uint64 {
	s.seq++
	s.revs[id] = s.seq
	return s.seq
}

// putLocked вставляет или заменяет запись и возвращает id, если у нее сменился приоритет или статус
func (s *Store) putLocked(record models.Incident) []int64 {
	s.bumpLocked(record.ID)
	if pos, ok := s.index[record.ID]; ok {
		old := s.items[pos]
		s.items[pos] = record
		if significantChange(old, record) {
			return []int64{record.ID}
		}
		return nil
	}
	s.index[record.ID] = len(s.items)
	s.items = append(s.items, record)
	return nil
}

func (s *Store) deleteLocked(id int64) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	delete(s.revs, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	return true
}

func (s *Store) isTombstoned(id int64) bool {
	return s.tombstones.Contains(id)
}

func (s *Store) idsLocked() []int64 {
	ids := make([]int64, len(s.items))
	for i, item := range s.items {
		ids[i] = item.ID
	}
	return ids
}

func (s *Store) copyLocked() []models.Incident {
	out := make([]models.Incident, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) highlight(ids []int64) {
	if len(ids) == 0 || s.highlights == nil {
		return
	}
	s.highlights.MarkChanged(ids...)
}

// newerThan сообщает, что запись обновлена на сервере позже другой.
// Метки ISO 8601 одного сервера сравниваются как строки; без меток порядок неизвестен.
func newerThan(stored, other models.Incident) bool {
	return stored.UpdatedAt != "" && other.UpdatedAt != "" && stored.UpdatedAt > other.UpdatedAt
}

func significantChange(old, updated models.Incident) bool {
	return old.Priority != updated.Priority || old.Status != updated.Status
}

func notify(listeners []Listener, change Change) {
	for _, l := range listeners {
		l(change)
	}
}
