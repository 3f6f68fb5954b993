package store

import (
	"errors"
	"sync"

	"flatacuties/feature/characters/models"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("character not found")

// Store is an ordered collection of characters keyed by id.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records []models.Character
	index   map[int]int // id -> position in records
}

// New creates an empty store.
func New() *Store {
	return &Store{index: make(map[int]int)}
}

// ReplaceAll discards the current contents and stores records in order.
// A repeated id keeps its first position and its last value.
func (s *Store) ReplaceAll(records []models.Character) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]models.Character, 0, len(records))
	s.index = make(map[int]int, len(records))
	for _, rec := range records {
		s.upsertLocked(rec.Normalize())
	}
}

// Upsert overwrites the record with the same id, or appends it.
func (s *Store) Upsert(rec models.Character) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertLocked(rec.Normalize())
}

func (s *Store) upsertLocked(rec models.Character) {
	if pos, ok := s.index[rec.ID]; ok {
		s.records[pos] = rec
		return
	}
	s.index[rec.ID] = len(s.records)
	s.records = append(s.records, rec)
}

// Swap replaces the record stored under oldID with rec, keeping its position.
// If rec's id already belongs to another record, that record is overwritten and
// the old entry is removed. If oldID is unknown, rec is upserted.
func (s *Store) Swap(oldID int, rec models.Character) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec = rec.Normalize()
	pos, ok := s.index[oldID]
	if !ok {
		s.upsertLocked(rec)
		return
	}
	if oldID == rec.ID {
		s.records[pos] = rec
		return
	}
	if _, taken := s.index[rec.ID]; taken {
		s.removeLocked(oldID)
		s.upsertLocked(rec)
		return
	}
	delete(s.index, oldID)
	s.index[rec.ID] = pos
	s.records[pos] = rec
}

func (s *Store) removeLocked(id int) {
	pos, ok := s.index[id]
	if !ok {
		return
	}
	s.records = append(s.records[:pos], s.records[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.records); i++ {
		s.index[s.records[i].ID] = i
	}
}

// Get returns the record with the given id.
func (s *Store) Get(id int) (models.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[id]
	if !ok {
		return models.Character{}, ErrNotFound
	}
	return s.records[pos], nil
}

// All returns a copy of the records in store order.
func (s *Store) All() []models.Character {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Character, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// First returns the first record in store order.
func (s *Store) First() (models.Character, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.records) == 0 {
		return models.Character{}, false
	}
	return s.records[0], true
}

// NextID returns max(id)+1, or 1 for an empty store.
// It is only collision free for a single writer.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	next := 1
	for _, rec := range s.records {
		if rec.ID >= next {
			next = rec.ID + 1
		}
	}
	return next
}
