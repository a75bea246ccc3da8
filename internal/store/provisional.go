package store

import (
	"github.com/shenikar/geo_incident_sync/internal/models"
)

// Provisional - незавершенное двухфазное изменение. Провизорная запись видна сразу,
// затем атомарно заменяется ответом сервера (Commit) или откатывается (Rollback).
type Provisional struct {
	id      int64
	rev     uint64
	prev    *models.Incident
	created bool
	done    bool
}

// ID возвращает идентификатор провизорной записи; для новых записей он отрицательный
func (p *Provisional) ID() int64 {
	return p.id
}

// BeginProvisional показывает запись до подтверждения сервером.
// Запись с нулевым id считается новой и получает временный отрицательный id.
func (s *Store) BeginProvisional(record models.Incident) *Provisional {
	s.mu.Lock()
	p := &Provisional{}
	if record.ID == 0 {
		s.nextTempID--
		record.ID = s.nextTempID
		p.created = true
	} else if pos, ok := s.index[record.ID]; ok {
		prev := s.items[pos]
		p.prev = &prev
	} else {
		p.created = true
	}
	p.id = record.ID
	s.putLocked(record)
	p.rev = s.revs[record.ID]
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, Change{Op: OpProvision, IDs: []int64{record.ID}, Records: []models.Incident{record}})
	return p
}

// Commit заменяет провизорную запись авторитетной. Если сервер уже прислал ту же запись
// по каналу, провизорная копия просто убирается, дубликата не возникает.
// Кадр, пришедший во время запроса и более новый, чем ответ, не перезаписывается.
func (s *Store) Commit(p *Provisional, authoritative models.Incident) {
	s.mu.Lock()
	if p.done {
		s.mu.Unlock()
		return
	}
	p.done = true

	var highlighted []int64
	switch {
	case s.isTombstoned(authoritative.ID):
		// удалено, пока ждали ответа
		s.deleteLocked(p.id)
	case p.id != authoritative.ID:
		if pos, exists := s.index[authoritative.ID]; exists {
			current := s.items[pos]
			s.deleteLocked(p.id)
			if newerThan(current, authoritative) {
				authoritative = current
			} else {
				s.putLocked(authoritative)
			}
		} else if pos, ok := s.index[p.id]; ok {
			delete(s.index, p.id)
			delete(s.revs, p.id)
			s.items[pos] = authoritative
			s.index[authoritative.ID] = pos
			s.bumpLocked(authoritative.ID)
		} else {
			s.putLocked(authoritative)
		}
	default:
		pos, ok := s.index[p.id]
		if ok && s.revs[p.id] != p.rev && newerThan(s.items[pos], authoritative) {
			authoritative = s.items[pos]
			break
		}
		// запись, удаленную полной заменой списка, не воскрешаем
		if ok || p.created {
			s.putLocked(authoritative)
			if p.prev != nil && significantChange(*p.prev, authoritative) {
				highlighted = []int64{authoritative.ID}
			}
		}
	}
	listeners := s.listeners
	s.mu.Unlock()

	s.highlight(highlighted)
	notify(listeners, Change{Op: OpCommit, IDs: []int64{authoritative.ID}, Records: []models.Incident{authoritative}})
}

// Rollback возвращает состояние до BeginProvisional. Если запись уже перезаписана
// кадром с сервера, остается версия из кадра.
func (s *Store) Rollback(p *Provisional) {
	s.mu.Lock()
	if p.done {
		s.mu.Unlock()
		return
	}
	p.done = true

	var records []models.Incident
	if pos, ok := s.index[p.id]; ok {
		switch {
		case s.revs[p.id] != p.rev:
			records = []models.Incident{s.items[pos]}
		case p.created:
			s.deleteLocked(p.id)
		default:
			s.putLocked(*p.prev)
			records = []models.Incident{*p.prev}
		}
	}
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, Change{Op: OpRollback, IDs: []int64{p.id}, Records: records})
}
